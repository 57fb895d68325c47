package config

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/kvcheck/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not a known version.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidOutput indicates an unrecognized output format.
	ErrInvalidOutput = errors.New("invalid output format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, &FieldError{
			Field: "version",
			Value: fmt.Sprint(cfg.Version),
			Err:   ErrUnsupportedVersion,
		})
	}

	switch cfg.Output {
	case OutputText, OutputJSON:
	default:
		errs = append(errs, &FieldError{
			Field: "output",
			Value: cfg.Output,
			Err:   ErrInvalidOutput,
		})
	}

	if strings.ContainsRune(cfg.Schema, '\x00') {
		errs = append(errs, &FieldError{
			Field: "schema",
			Value: cfg.Schema,
			Err:   ErrInvalidPath,
		})
	}

	return errs
}

// FieldError represents an error for a specific settings field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
