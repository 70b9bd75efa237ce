package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an AppError so callers can branch on the kind of
// failure without parsing messages.
type ErrorCode string

const (
	CodeNotFound               ErrorCode = "NOT_FOUND"
	CodeAlreadyCreator         ErrorCode = "ALREADY_CREATOR"
	CodeAlreadyJoined          ErrorCode = "ALREADY_JOINED"
	CodeMatchFull              ErrorCode = "MATCH_FULL"
	CodeNotJoined              ErrorCode = "NOT_JOINED"
	CodeCooldownActive         ErrorCode = "COOLDOWN_ACTIVE"
	CodeAccessDenied           ErrorCode = "ACCESS_DENIED"
	CodeConcurrentModification ErrorCode = "CONCURRENT_MODIFICATION"
	CodeAlreadyExists          ErrorCode = "ALREADY_EXISTS"
	CodeUnauthorized           ErrorCode = "UNAUTHORIZED"
	CodeInvalidInput           ErrorCode = "INVALID_INPUT"
	CodeInternal               ErrorCode = "INTERNAL"
)

type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without an underlying cause.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates an AppError around an underlying cause.
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf returns the ErrorCode of err, or CodeInternal if err is not an
// AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// HTTPStatus maps an error to the HTTP status the transport layer should
// respond with. Business-rule rejections map to 409, authorization failures
// to 401/403, everything unclassified to 500.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAccessDenied:
		return http.StatusForbidden
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeAlreadyCreator, CodeAlreadyJoined, CodeMatchFull, CodeNotJoined,
		CodeCooldownActive, CodeAlreadyExists, CodeConcurrentModification:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
