// Package yamlcfg is the YAML implementation of the config.Loader
// interface, for projects defined in .yaml files instead of HCL.
package yamlcfg
