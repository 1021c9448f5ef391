// Package traverse enumerates complete end-to-end pipelines through a
// workflow graph as a lazy sequence.
//
// Paths are produced by depth-first descent in node and edge insertion
// order, so enumeration is stable and deterministic: the first pipeline of a
// waterfall graph is always the configured-default technique at every step.
// No path is materialized before it is requested, which bounds memory on
// combinatorially large contest and survey graphs. Cyclic regions terminate
// through a per-node revisit bound; a path cut off at the bound is yielded
// with its Truncated flag set rather than silently looking like a natural
// terminal.
package traverse
