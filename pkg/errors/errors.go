package errors

import (
	"errors"
	"net/http"
)

// AppError is a custom error type that includes an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Common errors
var (
	ErrInvalidRequest = NewAppError(http.StatusBadRequest, "Invalid request parameters")
	ErrUnauthorized   = NewAppError(http.StatusUnauthorized, "Unauthorized access")
	ErrForbidden      = NewAppError(http.StatusForbidden, "Access denied")
	ErrNotFound       = NewAppError(http.StatusNotFound, "Resource not found")
	ErrInternalServer = NewAppError(http.StatusInternalServerError, "Internal server error")
	ErrRateLimit      = NewAppError(http.StatusTooManyRequests, "Rate limit exceeded")
)

// Domain sentinels for the achievement engine. Handlers translate these at
// the HTTP edge; services compare with errors.Is.
var (
	// ErrAchievementNotFound signals an unknown achievement id.
	ErrAchievementNotFound = errors.New("achievement not found")

	// ErrAlreadyAwarded signals an attempted re-award. Callers treat it as a
	// no-op, never as a user-visible failure.
	ErrAlreadyAwarded = errors.New("achievement already awarded")

	// ErrStorage wraps transient row-store failures; callers may retry.
	ErrStorage = errors.New("storage unavailable")

	// ErrAuthenticationRequired signals an operation with no resolved user id.
	ErrAuthenticationRequired = errors.New("authentication required")
)

// StorageError wraps err so callers can detect retryable storage failures
// with errors.Is(err, ErrStorage) while keeping the cause in the chain.
func StorageError(err error) error {
	if err == nil {
		return nil
	}
	return &wrappedStorageError{cause: err}
}

type wrappedStorageError struct {
	cause error
}

func (e *wrappedStorageError) Error() string {
	return "storage unavailable: " + e.cause.Error()
}

func (e *wrappedStorageError) Unwrap() error { return e.cause }

func (e *wrappedStorageError) Is(target error) bool { return target == ErrStorage }

// Helper functions to create specific errors
func BadRequest(msg string) *AppError {
	return NewAppError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *AppError {
	return NewAppError(http.StatusNotFound, msg)
}

func Unauthorized(msg string) *AppError {
	return NewAppError(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) *AppError {
	return NewAppError(http.StatusForbidden, msg)
}

func Internal(msg string) *AppError {
	return NewAppError(http.StatusInternalServerError, msg)
}
