// File: backend/errors.go
package backend

import (
	"errors"
	"fmt"
)

// RequestError is a transport-level failure: the request never produced a
// usable response (connection refused, DNS, body decode).
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func NewRequestError(op string, err error) error {
	return &RequestError{Op: op, Err: err}
}

// StatusError is a non-2xx backend response. Message carries the backend's
// human-readable message when one could be decoded from the body.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// IsNotFound reports whether err is (or wraps) a 404 backend response.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
