package registry

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every construction error.
var ErrInvalidConfig = errors.New("invalid registry configuration")

// ConfigError describes one problem found while validating a Config.
type ConfigError struct {
	Field  string // "entry", "alias" or "default"
	Name   string // offending name, may be empty
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Name, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
