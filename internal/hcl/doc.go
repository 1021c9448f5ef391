// Package hcl is the HCL implementation of the config.Loader interface. It
// parses project, worker, step, loop, and technique blocks into the
// format-agnostic config model, evaluating parameter expressions into plain
// Go values.
package hcl
