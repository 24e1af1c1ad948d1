package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error pairs an HTTP status and a machine code with the message shown to clients.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(code, message string) *Error {
	return New(http.StatusNotFound, code, errors.New(message))
}

// From unwraps err into an *Error, falling back to an opaque 500.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) && ae != nil {
		return ae
	}
	return New(http.StatusInternalServerError, "internal_error", errors.New("internal server error"))
}
