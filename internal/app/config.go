package app

import (
	"errors"
	"fmt"
)

// Outputs recognized by the -output flag.
const (
	OutputSummary = "summary"
	OutputDOT     = "dot"
	OutputPaths   = "paths"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string // hcl or yaml files

	Output      string
	MaxRevisits int

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	switch cfg.Output {
	case OutputSummary, OutputDOT, OutputPaths:
	default:
		return nil, fmt.Errorf("invalid output %q", cfg.Output)
	}
	if cfg.MaxRevisits < 0 {
		return nil, errors.New("MaxRevisits cannot be negative")
	}
	return &cfg, nil
}
