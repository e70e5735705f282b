package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryHost     Category = "host"
	CategoryApp      Category = "app"
	CategoryConfig   Category = "config"
	CategoryProtocol Category = "protocol"
	CategoryPublish  Category = "publish"
	CategoryCLI      Category = "cli"
)

// VliteError is a structured error with a code, suggestion, and documentation.
type VliteError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (host, app, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VliteError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VliteError) Unwrap() error {
	return e.Wrapped
}

// Is matches any VliteError carrying the same code, so callers can test
// errors.Is(err, errors.New("E101")).
func (e *VliteError) Is(target error) bool {
	t, ok := target.(*VliteError)
	if !ok || t.Code == "" {
		return false
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VliteError) WithSuggestion(s string) *VliteError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *VliteError) WithDetail(d string) *VliteError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *VliteError) WithDetailf(format string, args ...any) *VliteError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *VliteError) Wrap(err error) *VliteError {
	e.Wrapped = err
	return e
}

// New creates a VliteError from a registered error code.
func New(code string) *VliteError {
	template, ok := registry[code]
	if !ok {
		return &VliteError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VliteError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new VliteError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VliteError {
	return &VliteError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VliteError.
func FromError(err error, code string) *VliteError {
	if err == nil {
		return nil
	}
	var ve *VliteError
	if stderrors.As(err, &ve) {
		return ve
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first VliteError in err's chain, or "".
func CodeOf(err error) string {
	var ve *VliteError
	if stderrors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

// As is errors.As, re-exported so callers need only this package.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Is is errors.Is, re-exported so callers need only this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
