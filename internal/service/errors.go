package service

import (
	"errors"
	"fmt"
)

// Kind classifies service failures so the HTTP boundary can map them to
// statuses without inspecting messages.
type Kind int

const (
	// KindValidation marks caller-input problems: bad filenames, disallowed
	// symbols, malformed rows, unknown sort modes, unparsable dates.
	KindValidation Kind = iota + 1

	// KindNoContent marks queries that legitimately have nothing to return.
	// It is an explicit "no data" outcome, not a fault.
	KindNoContent

	// KindComputation marks unexpected internal faults during parsing or
	// metadata computation. The only kind meant to alert an operator.
	KindComputation
)

// Error carries a failure kind, a caller-facing message, and an optional
// underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NoContentf builds a KindNoContent error.
func NoContentf(format string, args ...any) *Error {
	return &Error{Kind: KindNoContent, Message: fmt.Sprintf(format, args...)}
}

// Computationf builds a KindComputation error wrapping its cause.
func Computationf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindComputation, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from err, or KindComputation for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindComputation
}

// MessageOf extracts the caller-facing message from err, falling back to
// err.Error() for foreign errors.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}
