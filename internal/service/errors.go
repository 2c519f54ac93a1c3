package service

import (
	"errors"
	"strings"
)

var (
	ErrMalformedRequest   = errors.New("malformed request body")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("email is not a gmail address")
	ErrEmptyPassword      = errors.New("password is empty")
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrStorage            = errors.New("storage failure")
	ErrReportRender       = errors.New("report rendering failed")

	errNoID = errors.New("store returned no id")
)

// MissingFieldsError lists every required field that was empty, in
// declaration order. It matches ErrMissingFields with errors.Is.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// storageError matches ErrStorage and still unwraps to the driver cause, so
// the cause can be logged without reaching the client.
type storageError struct {
	op  string
	err error
}

func (e *storageError) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *storageError) Unwrap() []error {
	return []error{ErrStorage, e.err}
}

func wrapStorage(op string, err error) error {
	return &storageError{op: op, err: err}
}
