package ranking

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel kind wrapped by every ConfigError, so
// callers can match the whole class with errors.Is.
var ErrInvalidConfig = errors.New("invalid ranking config")

// ConfigError reports an invalid ranking configuration, identifying the
// offending field so callers can surface a field-level validation message.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid ranking config: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErrorf(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
