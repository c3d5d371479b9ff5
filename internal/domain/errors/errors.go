package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNetwork      = errors.New("network failure")
	ErrDecode       = errors.New("response decode failure")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("resource not found")
	ErrBadRequest   = errors.New("bad request")
	ErrNoToken      = errors.New("no token stored")
	ErrTokenExpired = errors.New("token expired")
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrBadRequest)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Validation(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrValidation)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// Network wraps a transport-level failure (connection refused, timeout,
// cancelled request).
func Network(err error) *AppError {
	return &AppError{Status: 0, Message: "request failed", Err: errors.Join(ErrNetwork, err)}
}

// Decode wraps a malformed response body.
func Decode(err error) *AppError {
	return &AppError{Status: 0, Message: "unexpected response body", Err: errors.Join(ErrDecode, err)}
}

// FromStatus maps a non-2xx HTTP status to the matching domain error.
func FromStatus(status int, message string) *AppError {
	switch status {
	case http.StatusUnauthorized:
		return NewAppError(status, message, ErrUnauthorized)
	case http.StatusForbidden:
		return NewAppError(status, message, ErrForbidden)
	case http.StatusNotFound:
		return NewAppError(status, message, ErrNotFound)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return NewAppError(status, message, ErrValidation)
	default:
		return NewAppError(status, message, ErrBadRequest)
	}
}

// IsAuthFailure reports whether err means the session is no longer accepted
// by the backend and must be discarded.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}
