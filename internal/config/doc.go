// Package config defines the format-agnostic representation of a project
// definition: the ordered workers, their designs and steps, and per-technique
// parameter overrides.
//
// Concrete formats (HCL, YAML) implement the Loader interface and translate
// their syntax into this model. Everything downstream of loading — catalogue
// construction, graph building, traversal — depends only on this package and
// never on a parser.
package config
