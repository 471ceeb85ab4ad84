// Package apperror defines the error taxonomy recovered at the request
// boundary. Every failure a caller can observe carries a stable machine
// code alongside the human-readable message.
package apperror

import (
	"errors"
	"fmt"
)

// Code is a stable machine-readable error code
type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeResourceNotFound   Code = "RESOURCE_NOT_FOUND"
	CodeAccessUnauthorized Code = "ACCESS_UNAUTHORIZED"
	CodeResourceConflict   Code = "RESOURCE_CONFLICT"
	CodeRoleNotConfigured  Code = "ROLE_NOT_CONFIGURED"
	CodeInternal           Code = "INTERNAL_SERVER_ERROR"
)

// Error is a classified application error
type Error struct {
	Code    Code
	Message string
	// Fields holds per-field validation detail, only for CodeValidation
	Fields map[string]string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error for server-side logging
func (e *Error) WithCause(err error) *Error {
	clone := *e
	clone.cause = err
	return &clone
}

// Validation reports malformed input with per-field detail
func Validation(fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: "validation failed", Fields: fields}
}

// NotFound reports a missing resource
func NotFound(message string) *Error {
	return &Error{Code: CodeResourceNotFound, Message: message}
}

// Unauthorized reports an authenticated caller without entitlement,
// including a caller with no membership in the target workspace
func Unauthorized(message string) *Error {
	return &Error{Code: CodeAccessUnauthorized, Message: message}
}

// Conflict reports a uniqueness violation, e.g. a duplicate membership
func Conflict(message string) *Error {
	return &Error{Code: CodeResourceConflict, Message: message}
}

// Configuration reports an operational defect such as an unseeded role
func Configuration(message string) *Error {
	return &Error{Code: CodeRoleNotConfigured, Message: message}
}

// Internal wraps an unexpected failure without exposing its detail
func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "internal server error", cause: err}
}

// As extracts an *Error from an error chain
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code
func IsCode(err error, code Code) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
