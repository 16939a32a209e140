// Package errors provides domain-specific error types for the sandbox.
// All error types support error unwrapping via errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"

	"github.com/reglet-dev/script-sandbox/domain/entities"
)

// ErrorDetail is an alias to entities.ErrorDetail for convenience.
type ErrorDetail = entities.ErrorDetail

var (
	// ErrUnknownKind is reported for a definition line whose first token is
	// not a signature kind keyword.
	ErrUnknownKind = stdErrors.New("unknown signature kind")

	// ErrTokenCount is reported for a definition line with the wrong number
	// of tokens for its kind.
	ErrTokenCount = stdErrors.New("wrong number of tokens")
)

// DetailedError is an interface for custom error types that can convert themselves
// to a structured ErrorDetail.
type DetailedError interface {
	error
	ToErrorDetail() *entities.ErrorDetail
}

// ToErrorDetail converts a Go error to our structured ErrorDetail.
// This function recognizes custom error types and categorizes them appropriately.
func ToErrorDetail(err error) *entities.ErrorDetail {
	if err == nil {
		return nil
	}

	var e *entities.ErrorDetail
	if stdErrors.As(err, &e) {
		return e
	}

	var de DetailedError
	if stdErrors.As(err, &de) {
		return de.ToErrorDetail()
	}

	return &entities.ErrorDetail{
		Message: err.Error(),
		Type:    "internal",
	}
}

// ParseError reports a definition line that could not be parsed. Line is the
// raw line as read from the source.
type ParseError struct {
	Err        error
	Source     string
	Line       string
	LineNumber int
}

func (e *ParseError) Error() string {
	if e.Source != "" && e.LineNumber > 0 {
		return fmt.Sprintf("%s:%d: invalid signature %q: %v", e.Source, e.LineNumber, e.Line, e.Err)
	}
	if e.LineNumber > 0 {
		return fmt.Sprintf("line %d: invalid signature %q: %v", e.LineNumber, e.Line, e.Err)
	}
	return fmt.Sprintf("invalid signature %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ParseError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "parse",
		Code:    "invalid_signature",
		Details: map[string]any{"line": e.Line, "line_number": e.LineNumber, "source": e.Source},
	}
}

// SourceError reports a definition source that could not be opened or read.
type SourceError struct {
	Err    error
	Source string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("definition source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *SourceError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "source", Code: e.Source}
}

// SecurityError is the rejection of an operation. Its message is parsed by
// downstream tooling and must not change shape.
type SecurityError struct {
	Signature string // canonical signature text
	Info      string // optional extra information
}

func (e *SecurityError) Error() string {
	detail := e.Signature
	if e.Info != "" {
		detail += " (" + e.Info + ")"
	}
	return "Insecure call to '" + detail + "' you can tweak the security " +
		"sandbox to allow it. Read more about this in the documentation."
}

// ToErrorDetail implements DetailedError.
func (e *SecurityError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{
		Message: e.Error(),
		Type:    "security",
		Code:    "rejected",
		Details: map[string]any{"signature": e.Signature},
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ToErrorDetail implements DetailedError.
func (e *ConfigError) ToErrorDetail() *entities.ErrorDetail {
	return &entities.ErrorDetail{Message: e.Error(), Type: "config", Code: e.Field}
}
