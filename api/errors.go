// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-mem library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrAllocationFailed = fmt.Errorf("allocation failed")
	ErrIndexOutOfBounds = fmt.Errorf("index out of bounds")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrAllocatorClosed  = fmt.Errorf("allocator is closed")
	ErrInternal         = fmt.Errorf("internal error")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeAllocationFailed
	ErrCodeIndexOutOfBounds
	ErrCodeInvalidArgument
	ErrCodeAllocatorClosed
	ErrCodeInternal
)

// sentinel maps a code to the sentinel error it unwraps to.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeAllocationFailed:
		return ErrAllocationFailed
	case ErrCodeIndexOutOfBounds:
		return ErrIndexOutOfBounds
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodeAllocatorClosed:
		return ErrAllocatorClosed
	case ErrCodeInternal:
		return ErrInternal
	}
	return nil
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap lets errors.Is match the sentinel for the error's code.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
