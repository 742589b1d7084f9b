package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeAuthenticationRequired = "AUTHENTICATION_REQUIRED"
	CodeInvalidResponse        = "INVALID_RESPONSE"
	CodeServerError            = "SERVER_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeBadRequest             = "BAD_REQUEST"
	CodeForbidden              = "FORBIDDEN"
	CodeInternal               = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// AuthenticationRequired is raised before any network call when no bearer
// token is available for an admin-only operation.
func AuthenticationRequired() *AppError {
	return &AppError{
		Code:    CodeAuthenticationRequired,
		Message: "Authentication token not found",
		Status:  http.StatusUnauthorized,
	}
}

// InvalidResponse covers transport-level failures and bodies that are not
// JSON, such as an HTML error page served by a proxy.
func InvalidResponse(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInvalidResponse,
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// ServerError carries a message reported by the backend in a structured
// error body, together with the HTTP status it arrived with.
func ServerError(status int, message string) *AppError {
	code := CodeServerError
	switch status {
	case http.StatusNotFound:
		code = CodeNotFound
	case http.StatusBadRequest:
		code = CodeBadRequest
	case http.StatusUnauthorized:
		code = CodeAuthenticationRequired
	case http.StatusForbidden:
		code = CodeForbidden
	}
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Code extracts the taxonomy code from an error, defaulting to
// INTERNAL_ERROR for errors that did not come out of a gateway.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Message returns the user-facing message for an error.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
