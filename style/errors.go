package style

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedShape is reported for values that match none of a field's accepted shapes.
	ErrUnrecognizedShape = errors.New("unrecognized shape")

	// ErrShapeMismatch is reported when a value starts out like an accepted
	// shape but one of its components has the wrong type.
	ErrShapeMismatch = errors.New("shape mismatch")
)

// ConfigError identifies the field whose value could not be resolved.
type ConfigError struct {
	Field  string
	Shape  string
	Detail string
	Err    error
}

func newConfigError(field string, value any, err error, detail string, args ...any) error {
	return &ConfigError{
		Field:  field,
		Shape:  fmt.Sprintf("%T", value),
		Detail: fmt.Sprintf(detail, args...),
		Err:    err,
	}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return fmt.Sprintf("config error: %s: %s: %s (got %s)", e.Field, e.Err, e.Detail, e.Shape)
	}
	return fmt.Sprintf("config error: %s: %s (got %s)", e.Field, e.Err, e.Shape)
}

// Unwrap exposes the underlying sentinel.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
