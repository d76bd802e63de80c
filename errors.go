package img2ascii

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures a conversion run can surface to the
// user. Each kind maps to a fixed diagnostic message.
type ErrorKind int

const (
	// KindUnknown is returned by KindOf for errors that are not *Error.
	KindUnknown ErrorKind = iota
	// KindInputNotFound means the input path does not resolve to a
	// readable file.
	KindInputNotFound
	// KindUnsupportedFormat means the file exists but is not a decodable
	// image.
	KindUnsupportedFormat
	// KindInvalidNumericInput means a width or height could not be parsed
	// or is out of range.
	KindInvalidNumericInput
	// KindInvalidMode means the mode selector is outside 1..3.
	KindInvalidMode
)

var (
	// ErrInputNotFound matches errors of KindInputNotFound.
	ErrInputNotFound = errors.New("input not found")
	// ErrUnsupportedFormat matches errors of KindUnsupportedFormat.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrInvalidNumericInput matches errors of KindInvalidNumericInput.
	ErrInvalidNumericInput = errors.New("invalid numeric input")
	// ErrInvalidMode matches errors of KindInvalidMode.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrInvalidRamp is returned when a glyph ramp is empty or too long.
	ErrInvalidRamp = errors.New("invalid glyph ramp")
)

// Message returns the user-facing diagnostic for the kind.
func (k ErrorKind) Message() string {
	switch k {
	case KindInputNotFound:
		return "could not find the file, the path may be incorrect"
	case KindUnsupportedFormat:
		return "incorrect file format"
	case KindInvalidNumericInput, KindInvalidMode:
		return "incorrect input"
	}
	return "unexpected error"
}

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInputNotFound:
		return "InputNotFound"
	case KindUnsupportedFormat:
		return "UnsupportedFormat"
	case KindInvalidNumericInput:
		return "InvalidNumericInput"
	case KindInvalidMode:
		return "InvalidMode"
	}
	return "Unknown"
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInputNotFound:
		return ErrInputNotFound
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindInvalidNumericInput:
		return ErrInvalidNumericInput
	case KindInvalidMode:
		return ErrInvalidMode
	}
	return nil
}

// Error is the typed error returned by validation, loading and conversion.
// Input holds the offending value (a path, a number, a selector) and Err
// the underlying cause, if any.
type Error struct {
	Kind  ErrorKind
	Input string
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := e.Kind.String()
	if s := e.Kind.sentinel(); s != nil {
		prefix = s.Error()
	}
	msg := fmt.Sprintf("%s: %q", prefix, e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind ErrorKind, input string, err error) *Error {
	return &Error{Kind: kind, Input: input, Err: err}
}

// KindOf returns the ErrorKind carried by err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
