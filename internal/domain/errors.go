package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrParse         = errors.New("parse error")
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInput  ErrorKind = "invalid_input"
	KindParse         ErrorKind = "parse"
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Field string // Optional: offending input field or config key
	Path  string // Optional: relevant file path
	Msg   string // Optional: human-readable message shown to the user
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidInput reports a domain-rule violation (non-positive volume, zero denominator, ...).
func InvalidInput(op, field, msg string) *OpError {
	return &OpError{
		Op:    op,
		Kind:  KindInvalidInput,
		Field: field,
		Msg:   msg,
		Err:   ErrInvalidInput,
	}
}

// ParseError reports text that could not be turned into a finite number.
func ParseError(op, field, msg string, cause error) *OpError {
	err := ErrParse
	if cause != nil {
		err = fmt.Errorf("%w: %v", ErrParse, cause)
	}
	return &OpError{
		Op:    op,
		Kind:  KindParse,
		Field: field,
		Msg:   msg,
		Err:   err,
	}
}

// UserMessage returns the message meant for a person reading a results pane.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var oe *OpError
	if errors.As(err, &oe) && oe.Msg != "" {
		return oe.Msg
	}
	return err.Error()
}
