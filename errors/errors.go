package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction indicates which half of the codec rejected the value
type Direction string

const (
	Serialization   Direction = "serialization"
	Deserialization Direction = "deserialization"
)

// Code categorizes the error
type Code string

const (
	CodeMessage            Code = "message"
	CodeUnsupported        Code = "unsupported_operation"
	CodeInvalidType        Code = "invalid_type"
	CodeInvalidVariantName Code = "invalid_variant_name"
	CodeTrailing           Code = "trailing_characters"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Cause      error
	Direction  Direction
	Code       Code
	Operation  string   // shape or operation name, for CodeUnsupported
	Unexpected string   // what the decoder found, for CodeInvalidType
	Expected   string   // what the decoder wanted, for CodeInvalidType
	Received   string   // name read from input, for CodeInvalidVariantName
	Allowed    []string // declared candidate names, for CodeInvalidVariantName
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	switch e.Code {
	case CodeUnsupported:
		b.WriteString("unsupported operation: ")
		b.WriteString(string(e.Direction))
		b.WriteString(": ")
		b.WriteString(e.Operation)
	case CodeInvalidType:
		b.WriteString("invalid type: ")
		b.WriteString(e.Unexpected)
		b.WriteString(", expected ")
		b.WriteString(e.Expected)
	case CodeInvalidVariantName:
		b.WriteString("invalid variant: ")
		b.WriteString(e.Received)
		b.WriteString(" is not a valid variant name ([")
		for i, name := range e.Allowed {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(name))
		}
		b.WriteString("])")
	case CodeTrailing:
		b.WriteString("trailing characters: input ends with trailing characters")
	default:
		b.WriteString(e.Detail)
	}

	if e.Detail != "" && e.Code != CodeMessage {
		b.WriteString(" - ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Direction == t.Direction && e.Code == t.Code
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(direction Direction, code Code) *Builder {
	return &Builder{
		err: Error{
			Direction: direction,
			Code:      code,
		},
	}
}

// Operation sets the rejected shape or operation name
func (b *Builder) Operation(op string) *Builder {
	b.err.Operation = op
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for the codec's error taxonomy

// Unsupported reports that a shape outside the name-only allow-list was
// encoded or decoded. The operation string names the rejected shape.
func Unsupported(direction Direction, operation string) *Error {
	return &Error{
		Direction: direction,
		Code:      CodeUnsupported,
		Operation: operation,
	}
}

// InvalidType reports a decode-side mismatch between the input and the
// declared name of the requested unit type.
func InvalidType(unexpected, expected string) *Error {
	return &Error{
		Direction:  Deserialization,
		Code:       CodeInvalidType,
		Unexpected: unexpected,
		Expected:   expected,
	}
}

// InvalidVariantName reports a decoded name that is not among the declared
// candidate set.
func InvalidVariantName(received string, allowed []string) *Error {
	return &Error{
		Direction: Deserialization,
		Code:      CodeInvalidVariantName,
		Received:  received,
		Allowed:   allowed,
	}
}

// Trailing reports input left unconsumed after a successful decode.
func Trailing() *Error {
	return &Error{
		Direction: Deserialization,
		Code:      CodeTrailing,
	}
}

// Message creates a generic error. It is the escape hatch required by the
// traversal contract for errors that do not fit the structured codes.
func Message(direction Direction, msg string, args ...any) *Error {
	detail := msg
	if len(args) > 0 {
		detail = fmt.Sprintf(msg, args...)
	}
	return &Error{
		Direction: direction,
		Code:      CodeMessage,
		Detail:    detail,
	}
}
