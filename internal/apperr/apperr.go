// Package apperr defines the errors that cross the service boundary and the
// HTTP status each of them is rendered with.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeMalformedID = "MALFORMED_ID"
	CodeInternal    = "INTERNAL_ERROR"
)

// FieldError is a single rule violation on a request field.
type FieldError struct {
	Field   string `json:"field" example:"first_name"`
	Message string `json:"message" example:"The first name is too short"`
}

// AppError carries a client-safe message and status. Cause is for logs only.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Cause      error
	Details    []FieldError
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

// Validation builds a 400 error from one or more field violations. The message
// joins every violation so clients without detail support still see them all.
func Validation(details ...FieldError) *AppError {
	msgs := make([]string, 0, len(details))
	for _, d := range details {
		msgs = append(msgs, d.Message)
	}
	msg := strings.Join(msgs, "; ")
	if msg == "" {
		msg = "Validation failed"
	}
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// BadRequest is a 400 without field details, e.g. an unparseable body.
func BadRequest(msg string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound builds the 404 for a resource, e.g. NotFound("actor") -> "Not found actor".
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    "Not found " + resource,
		HTTPStatus: http.StatusNotFound,
	}
}

// MalformedID is returned when a path identifier is not a positive integer.
func MalformedID(idField string) *AppError {
	return &AppError{
		Code:       CodeMalformedID,
		Message:    "The " + idField + " must be a numeric",
		HTTPStatus: http.StatusBadRequest,
	}
}

// Internal wraps a store or runtime failure. The cause never reaches the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As extracts the *AppError from err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
