package vybiumrescue

import (
	"errors"
	"fmt"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/codec"
)

// ErrorCode represents a hash adapter error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidArity represents a token count that differs from the required arity
	ErrInvalidArity

	// ErrParseFailure represents a token that is not a decimal of the required width
	ErrParseFailure

	// ErrInternalInvariant represents a digest of the wrong size or a similar defect
	ErrInternalInvariant

	// ErrInvalidText represents digest bytes that cannot be returned as text
	ErrInvalidText

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig
)

var codeNames = map[ErrorCode]string{
	ErrUnknown:           "unknown",
	ErrInvalidArity:      "invalid arity",
	ErrParseFailure:      "parse failure",
	ErrInternalInvariant: "internal invariant violation",
	ErrInvalidText:       "invalid text",
	ErrInvalidConfig:     "invalid config",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Sentinels for errors.Is; they match any AdapterError with the same code.
var (
	ErrArity     = &AdapterError{Code: ErrInvalidArity}
	ErrParse     = &AdapterError{Code: ErrParseFailure}
	ErrInvariant = &AdapterError{Code: ErrInternalInvariant}
	ErrText      = &AdapterError{Code: ErrInvalidText}
	ErrConfig    = &AdapterError{Code: ErrInvalidConfig}
)

// AdapterError represents a hash adapter error
type AdapterError struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

// Error returns the error message
func (e *AdapterError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Code.String()
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("vybium-rescue error [%s]: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("vybium-rescue error [%s]: %s", e.Code, msg)
}

// Unwrap returns the cause of the error
func (e *AdapterError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *AdapterError) Is(target error) bool {
	t, ok := target.(*AdapterError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func newError(code ErrorCode, op, msg string, cause error) *AdapterError {
	return &AdapterError{Code: code, Op: op, Message: msg, Cause: cause}
}

// classify maps codec failures onto adapter error codes.
func classify(op string, err error) error {
	var ae *AdapterError
	switch {
	case errors.As(err, &ae):
		return err
	case errors.Is(err, codec.ErrArity):
		return newError(ErrInvalidArity, op, "wrong number of values", err)
	case errors.Is(err, codec.ErrToken):
		return newError(ErrParseFailure, op, "unparsable value", err)
	case errors.Is(err, codec.ErrInvalidText):
		return newError(ErrInvalidText, op, "digest is not valid text", err)
	default:
		return newError(ErrUnknown, op, "", err)
	}
}
