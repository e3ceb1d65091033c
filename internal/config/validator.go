package config

import (
	"fmt"
	"strings"
)

// Bounds for the abbreviated revision length. git refuses shorter
// abbreviations and a SHA-1 id has 40 hex digits.
const (
	MinShortLength = 4
	MaxShortLength = 40
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "config validation failed: " + strings.Join(parts, "; ")
}

// Validate checks resolved options for values git or the renderer would
// reject later.
func Validate(opts *Options) error {
	var errs ValidationErrors

	if opts.ShortLength != 0 && (opts.ShortLength < MinShortLength || opts.ShortLength > MaxShortLength) {
		errs = append(errs, ValidationError{
			Field:   "shortLength",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinShortLength, MaxShortLength, opts.ShortLength),
		})
	}
	if opts.OutputPath != "" && opts.OutputPath == opts.TemplatePath {
		errs = append(errs, ValidationError{Field: "output", Message: "output path must differ from the template path"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
