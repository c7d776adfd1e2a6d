package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Messages returned to clients. They are part of the public contract.
const (
	MsgNotFound        = "Not found"
	MsgInternal        = "Internal server error"
	MsgInvalidJSON     = "Invalid JSON body"
	MsgBodyTooLarge    = "Request body too large"
	MsgTooManyRequests = "Too many requests"
)

// AppError is an error that knows how it should be rendered over HTTP.
type AppError struct {
	// Status is the HTTP status code
	Status int
	// Message is safe to show to the client
	Message string
	// Internal is the cause, logged but never sent
	Internal error
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Internal)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// Response renders the error as the JSON body sent to the client.
func (e *AppError) Response() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

func New(status int, message string, internal error) *AppError {
	return &AppError{
		Status:   status,
		Message:  message,
		Internal: internal,
	}
}

func NotFound() *AppError {
	return New(http.StatusNotFound, MsgNotFound, nil)
}

func Internal(internal error) *AppError {
	return New(http.StatusInternalServerError, MsgInternal, internal)
}

func BadRequest(message string, internal error) *AppError {
	return New(http.StatusBadRequest, message, internal)
}

func TooLarge(internal error) *AppError {
	return New(http.StatusRequestEntityTooLarge, MsgBodyTooLarge, internal)
}

func TooManyRequests() *AppError {
	return New(http.StatusTooManyRequests, MsgTooManyRequests, nil)
}

// AsAppError returns the AppError in err's chain, or wraps err as an internal error.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
