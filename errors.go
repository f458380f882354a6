package tabgroup

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for malformed input: empty vectors,
	// mismatched dimensions, or vectors with zero norm. It is never
	// retried internally; callers decide how to react.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrDimensionMismatch indicates that input vectors differ in dimensionality.
//
// Matches ErrInvalidInput via errors.Is.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return ErrInvalidInput }

// ErrZeroNorm indicates a vector with zero Euclidean norm, whose direction
// is undefined and which therefore cannot be normalized.
//
// Matches ErrInvalidInput via errors.Is.
type ErrZeroNorm struct {
	Index int
	TabID string
}

func (e *ErrZeroNorm) Error() string {
	return fmt.Sprintf("zero-norm vector at index %d (tab %q)", e.Index, e.TabID)
}

func (e *ErrZeroNorm) Unwrap() error { return ErrInvalidInput }
