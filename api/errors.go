// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import "fmt"

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidCapacity
	ErrCodeBufferFull
	ErrCodeBufferEmpty
	ErrCodeOutOfMemory
	ErrCodeIncompatibleOptions
	ErrCodeInvalidConfig
)

var codeNames = map[ErrorCode]string{
	ErrCodeOK:                  "ok",
	ErrCodeInvalidCapacity:     "invalid_capacity",
	ErrCodeBufferFull:          "buffer_full",
	ErrCodeBufferEmpty:         "buffer_empty",
	ErrCodeOutOfMemory:         "out_of_memory",
	ErrCodeIncompatibleOptions: "incompatible_options",
	ErrCodeInvalidConfig:       "invalid_config",
}

// String returns the snake_case name of the code.
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Common errors used across the library. Compare with errors.Is;
// copies enriched through WithContext still match.
var (
	ErrInvalidCapacity     = NewError(ErrCodeInvalidCapacity, "capacity must be positive")
	ErrBufferFull          = NewError(ErrCodeBufferFull, "ring buffer is full")
	ErrBufferEmpty         = NewError(ErrCodeBufferEmpty, "ring buffer is empty")
	ErrOutOfMemory         = NewError(ErrCodeOutOfMemory, "allocator out of memory")
	ErrIncompatibleOptions = NewError(ErrCodeIncompatibleOptions, "overwrite and thread-safe modes are mutually exclusive")
	ErrInvalidConfig       = NewError(ErrCodeInvalidConfig, "invalid ring configuration")
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf("%s (context: %+v)", msg, e.Context)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithContext returns a copy of e with key set to value.
// The receiver is left untouched so package sentinels stay immutable.
func (e *Error) WithContext(key string, value any) *Error {
	out := e.clone()
	out.Context[key] = value
	return out
}

// Wrap returns a copy of e that wraps cause.
func (e *Error) Wrap(cause error) *Error {
	out := e.clone()
	out.cause = cause
	return out
}

func (e *Error) clone() *Error {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
		cause:   e.cause,
	}
}
