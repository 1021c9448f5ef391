// Package export serializes a workflow graph as a DOT cluster-and-rank
// diagram for diagnostics. This is the engine's only wire format and is
// never read back.
package export
