// Package builder turns a worker's catalogue and design rule into a workflow
// subgraph, and exposes the incremental append API that scrum-style callers
// use to grow a graph between construction calls.
package builder
