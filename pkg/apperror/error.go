package apperror

import (
	"errors"
	"net/http"

	goerrors "github.com/go-errors/errors"
)

type AppError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	Err     error    `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Stack returns the stack captured when the cause was wrapped, if any.
func (e *AppError) Stack() string {
	var se *goerrors.Error
	if errors.As(e.Err, &se) {
		return string(se.Stack())
	}
	return ""
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation reports request validation failures. The first detail becomes
// the message.
func Validation(details []string) *AppError {
	msg := "Invalid request"
	if len(details) > 0 {
		msg = details[0]
	}
	return &AppError{Code: http.StatusBadRequest, Message: msg, Details: details}
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal hides the cause from clients. The cause is wrapped with a stack
// trace so the error middleware can log where it came from.
func Internal(err error) *AppError {
	if err != nil {
		err = goerrors.Wrap(err, 1)
	}
	return New(http.StatusInternalServerError, "Server error", err)
}

func Unavailable(message string, err error) *AppError {
	if err != nil {
		err = goerrors.Wrap(err, 1)
	}
	return New(http.StatusServiceUnavailable, message, err)
}
