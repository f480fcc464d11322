package vector

import (
	"errors"
	"fmt"
)

// Operation names carried by ErrDimensionMismatch.
const (
	OpAddition                  = "Addition"
	OpElementwiseMultiplication = "Elementwise multiplication"
	OpDotProduct                = "Dot product"
)

var (
	// ErrZeroStep is returned (or panicked with) when a Range step is zero.
	ErrZeroStep = errors.New("slice step cannot be zero")
)

// ErrDimensionMismatch indicates that an operation requiring equal lengths
// received vectors of different lengths.
type ErrDimensionMismatch struct {
	// Op names the failed operation (OpAddition, OpElementwiseMultiplication or OpDotProduct).
	Op    string
	Left  int
	Right int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s applies only to vectors of equal dimensions (%d != %d)", e.Op, e.Left, e.Right)
}

// ErrUnsupportedType indicates an operand or encoded component type the
// library cannot handle. Type names the offending type.
type ErrUnsupportedType struct {
	Type string
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.Type)
}

// ErrInvalidIndexType indicates an index expression that is neither an
// integer nor a slice specification.
//
// The underlying parse error (if any) can be accessed via errors.Unwrap.
type ErrInvalidIndexType struct {
	Input string
	cause error
}

func (e *ErrInvalidIndexType) Error() string {
	return fmt.Sprintf("vector indices must be integers or slices, got %q", e.Input)
}

func (e *ErrInvalidIndexType) Unwrap() error { return e.cause }

func checkDimensions(op string, left, right int) error {
	if left != right {
		return &ErrDimensionMismatch{Op: op, Left: left, Right: right}
	}
	return nil
}
