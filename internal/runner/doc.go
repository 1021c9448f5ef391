// Package runner is the boundary to the external technique executor. The
// engine exposes each node as a (technique, parameters) pair; whatever the
// executor returns is opaque here. Independent pipelines run in parallel
// because the graph carries no mutable shared state.
package runner
