// Package app wires the engine together for the command line tool: logger
// construction, project loading, per-worker graph building, linking, and the
// selected output (summary, DOT diagram, or path listing).
package app
