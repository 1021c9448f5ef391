package config

import "fmt"

// ConfigurationError reports malformed or missing catalogue input. It is
// never recovered locally: it means the project definition is unusable.
type ConfigurationError struct {
	Subject string
	Detail  string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Subject, e.Detail)
}

// NewConfigurationError builds a ConfigurationError for the given subject.
func NewConfigurationError(subject, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Subject: subject, Detail: fmt.Sprintf(format, args...)}
}
