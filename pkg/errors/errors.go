package errors

import (
	"fmt"
)

// ParseError represents a configuration decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration or input validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CompositionError reports a behavior layer that cannot be composed around a
// component: wrong ordering, a duplicate layer, or a missing required input.
// It is raised when a component is defined, never while rendering.
type CompositionError struct {
	Component string
	Layer     string
	Message   string
	Err       error
}

// NewCompositionError constructs a CompositionError.
func NewCompositionError(component, layer, message string) error {
	return &CompositionError{Component: component, Layer: layer, Message: message}
}

func (e *CompositionError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Component != "" && e.Layer != "":
		return fmt.Sprintf("composition error [%s/%s]: %s", e.Component, e.Layer, e.Message)
	case e.Component != "":
		return fmt.Sprintf("composition error [%s]: %s", e.Component, e.Message)
	default:
		return fmt.Sprintf("composition error: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *CompositionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
