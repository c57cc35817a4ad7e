package graph

import (
	"errors"
	"fmt"
)

// Kind classifies a failure raised by the graph library or the harness.
type Kind int

const (
	// InvalidParameter marks malformed arguments (bad counts, probabilities, vector sizes).
	InvalidParameter Kind = iota + 1
	// AlgorithmFailure marks an internal failure of an algorithm call.
	AlgorithmFailure
	// AllocationFailure marks a buffer that could not be sized.
	AllocationFailure
)

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid parameter"
	case AlgorithmFailure:
		return "algorithm failure"
	case AllocationFailure:
		return "allocation failure"
	default:
		return "unknown"
	}
}

// Common sentinel errors, one per Kind
var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrAlgorithmFailure  = errors.New("algorithm failure")
	ErrAllocationFailure = errors.New("allocation failure")
)

func (k Kind) sentinel() error {
	switch k {
	case InvalidParameter:
		return ErrInvalidParameter
	case AlgorithmFailure:
		return ErrAlgorithmFailure
	case AllocationFailure:
		return ErrAllocationFailure
	default:
		return nil
	}
}

// Error provides structured error information for graph and benchmark operations.
type Error struct {
	Op      string // Operation that failed (e.g., "UniformRandom", "Leiden")
	Kind    Kind   // Failure class
	Context string // Additional context
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for this error's Kind or matches its cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if s := e.Kind.sentinel(); s != nil && target == s {
		return true
	}
	return errors.Is(e.Cause, target)
}

// ErrorBuilder provides a fluent interface for building Errors.
type ErrorBuilder struct {
	err Error
}

// NewError creates a new error builder with the given operation.
func NewError(op string) *ErrorBuilder {
	return &ErrorBuilder{err: Error{Op: op}}
}

// Kind sets the failure class.
func (b *ErrorBuilder) Kind(k Kind) *ErrorBuilder {
	b.err.Kind = k
	return b
}

// Context sets additional context information.
func (b *ErrorBuilder) Context(format string, args ...any) *ErrorBuilder {
	b.err.Context = fmt.Sprintf(format, args...)
	return b
}

// Cause sets the underlying error cause.
func (b *ErrorBuilder) Cause(err error) *ErrorBuilder {
	b.err.Cause = err
	return b
}

// Build returns the constructed Error.
func (b *ErrorBuilder) Build() *Error {
	return &b.err
}

// Err returns the error as an error interface.
func (b *ErrorBuilder) Err() error {
	return &b.err
}

// Convenience functions for common error patterns

// InvalidParameterError creates an InvalidParameter error.
func InvalidParameterError(op, format string, args ...any) error {
	return NewError(op).Kind(InvalidParameter).Context(format, args...).Err()
}

// AlgorithmError wraps cause as an AlgorithmFailure of op.
// An error that already carries a Kind is returned unchanged.
func AlgorithmError(op string, cause error) error {
	var ge *Error
	if errors.As(cause, &ge) {
		return cause
	}
	return NewError(op).Kind(AlgorithmFailure).Cause(cause).Err()
}

// AllocationError creates an AllocationFailure error for a buffer of the given size.
func AllocationError(op, buffer string, size int) error {
	return NewError(op).Kind(AllocationFailure).Context("%s of size %d", buffer, size).Err()
}

// KindOf returns the Kind carried by err, or 0 if err is not a graph error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}

// IsInvalidParameter returns true if err is an InvalidParameter error.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}

// IsAlgorithmFailure returns true if err is an AlgorithmFailure error.
func IsAlgorithmFailure(err error) bool {
	return errors.Is(err, ErrAlgorithmFailure)
}
