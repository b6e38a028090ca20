package jasonify

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrUnregisteredType is returned when a registry lookup misses. It is a
	// configuration error: the codec for the type was never installed.
	ErrUnregisteredType = errors.New("jasonify: unregistered type")
	// ErrDuplicateType is returned by Builder.Register for a second entry with
	// the same type identity.
	ErrDuplicateType = errors.New("jasonify: duplicate type registration")
	// ErrUnexpectedEnd reports input that ended inside an open container or
	// string.
	ErrUnexpectedEnd = errors.New("jasonify: unexpected end of input")
	// ErrNotObject is returned by top-level decoding when the document is not
	// a JSON object.
	ErrNotObject = errors.New("jasonify: document is not an object")
	// ErrMaxDepth is returned when nesting exceeds the WithMaxDepth limit.
	ErrMaxDepth = errors.New("jasonify: max depth exceeded")
	// ErrWrongType is returned by an encode entry point handed a value of a
	// type it was not generated for.
	ErrWrongType = errors.New("jasonify: value has wrong type for codec")
	// ErrSkipPosition is returned by SkipChildren when the parser is not
	// positioned on START_OBJECT or START_ARRAY.
	ErrSkipPosition = errors.New("jasonify: skip children requires START_OBJECT or START_ARRAY")
	// ErrPushback is the panic value raised when the parser pushes back a
	// second character before reading the first one again.
	ErrPushback = errors.New("jasonify: parser pushback buffer already holds a character")
)

// SyntaxError is a lexical error. It aborts the current parse.
type SyntaxError struct {
	Offset int64 // byte offset of the offending character
	Msg    string
}

func (e *SyntaxError) Error() string {
	return "jasonify: syntax error at offset " + strconv.FormatInt(e.Offset, 10) + ": " + e.Msg
}

// NumberError reports a number literal that could not be converted to the
// requested width.
type NumberError struct {
	Literal string
	Err     error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("jasonify: invalid number %q: %v", e.Literal, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

// IsSyntaxError reports whether err is, or wraps, a *SyntaxError.
func IsSyntaxError(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// WrongType builds the error generated encoders return for a value that is
// neither T nor *T.
func WrongType(name string, v any) error {
	return fmt.Errorf("%w: %s cannot encode %T", ErrWrongType, name, v)
}
