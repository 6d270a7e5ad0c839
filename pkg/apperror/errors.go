package apperror

import (
	"errors"
	"net/http"
)

// AppError represents a data-access error with the HTTP status code of the
// backend response (0 for pure connectivity failures) and a message safe to
// surface to the operator.
type AppError struct {
	Code     int    `json:"code"`
	Resource string `json:"resource,omitempty"`
	Message  string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrUnauthorized = &AppError{Code: http.StatusUnauthorized, Message: "Session expired, please sign in again"}
	ErrForbidden    = &AppError{Code: http.StatusForbidden, Message: "You do not have permission to perform this action"}
	ErrNotFound     = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrConnectivity = &AppError{Code: 0, Message: "Could not reach the server, check your connection"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewFetchError creates the error every resource client raises when a request
// fails: the backend's own message when one was extracted, otherwise a generic
// connectivity message naming the resource.
func NewFetchError(resource string, code int, message string) *AppError {
	if message == "" {
		message = "Could not load " + resource + ", check your connection"
	}
	return &AppError{
		Code:     code,
		Resource: resource,
		Message:  message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:     http.StatusNotFound,
		Resource: resource,
		Message:  resource + " not found",
	}
}

// NewValidationError creates an error for client-side validation failures that
// are detected before a request is sent.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsUnauthorized reports whether the error came from a 401 response.
func IsUnauthorized(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
