// Package workflow holds the graph primitives of the engine: technique nodes,
// directed edges with design metadata, and the Graph container.
//
// A Graph is built single-threaded and is immutable once construction
// finishes, so any number of traversals may read it concurrently without
// locking. Node and edge iteration follow insertion order, which makes every
// build deterministic: identical catalogue, design, and step order always
// produce identical node identities and edge sets.
//
// Feedback edges are the one sanctioned deviation from acyclicity. They are
// tagged on the Edge, excluded from entry/terminal classification and from
// the cycle check, and bounded at traversal time.
package workflow
