package prefabs

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks every problem found while validating specs.
var ErrConfiguration = errors.New("prefabs: configuration error")

// ConfigError names the offending field. The affected feature falls back to
// a no-op instead of failing the whole load.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("prefabs: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrConfiguration
}

func configErr(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
