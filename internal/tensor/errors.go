package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrInvalidLiteral   = errors.New("invalid array literal")
)

// ShapeError reports operands whose extents are incompatible.
type ShapeError struct {
	Op  string // Operation that rejected the operands (e.g. "add", "matmul")
	LHS []int
	RHS []int
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %v: %s vs %s", e.Op, ErrShapeMismatch, formatInts(e.LHS), formatInts(e.RHS))
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// IndexError reports an index component outside its axis.
type IndexError struct {
	Axis  int   // First offending axis
	Index []int // Requested index tuple
	Shape []int // Extents of the indexed array
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds: index=%s shape=%s", e.Axis, formatInts(e.Index), formatInts(e.Shape))
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}
