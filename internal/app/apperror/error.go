// Package apperror carries an HTTP status and user-visible message across the
// app/adapter boundary. Rejections expose only the short message field; no
// internal detail crosses over.
package apperror

import "errors"

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// From extracts an *Error from err's chain.
func From(err error) (*Error, bool) {
	var ae *Error
	ok := errors.As(err, &ae)
	return ae, ok
}
