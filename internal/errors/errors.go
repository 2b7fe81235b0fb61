package errors

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ValidationError     ErrorCode = "validation_error"
	NotFound            ErrorCode = "not_found"
	AuthenticationError ErrorCode = "authentication_error"
	StoreError          ErrorCode = "store_error"
	HashFormatError     ErrorCode = "hash_format_error"
	InternalError       ErrorCode = "internal_error"
)

type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NewAppErrorf(code ErrorCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetails attaches the underlying cause. Details are for server-side
// logs only; handlers must never echo them to the client.
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// HTTPStatus maps each error code to its wire status. The mapping is
// closed and deterministic; unknown codes fall through to 500.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ValidationError:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case AuthenticationError:
		return http.StatusUnauthorized
	case StoreError, HashFormatError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Predefined errors for common cases
var (
	ErrAccountNotFound = NewAppError(NotFound, "account not found")
)
