package coo

import "errors"

// Sentinel errors for assembly and compression. All are returned as plain
// values and matched with errors.Is; none of the operations panic on
// user-supplied input.
var (
	// ErrOutOfRange is returned when a row or column index is negative, or
	// not below the fixed dimension of the matrix.
	ErrOutOfRange = errors.New("coo: index out of range")

	// ErrDimensionMismatch is returned when a vector length does not match
	// the matrix order.
	ErrDimensionMismatch = errors.New("coo: dimension mismatch")

	// ErrNilMatrix is returned when a nil *Matrix or *CSC receiver is used.
	ErrNilMatrix = errors.New("coo: nil matrix")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coo: invalid option supplied")
)
