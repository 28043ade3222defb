package splu

import "errors"

// Sentinel errors for factorization and solves. A singular matrix is a
// deterministic mathematical property of the input, not a transient
// condition; none of these are retryable and none abort the process.
var (
	// ErrSingular is returned when elimination runs out of eligible pivot
	// rows for some column (structurally singular pattern, e.g. an
	// all-zero row or column).
	ErrSingular = errors.New("splu: matrix is singular")

	// ErrZeroPivot is returned when the best pivot candidate's modulus is
	// not above the zero tolerance (numerically singular matrix).
	ErrZeroPivot = errors.New("splu: pivot magnitude below threshold")

	// ErrDimensionMismatch is returned when a right-hand side length does
	// not match the factorized order.
	ErrDimensionMismatch = errors.New("splu: dimension mismatch")

	// ErrEmptyMatrix is returned when a zero-order matrix is factorized.
	ErrEmptyMatrix = errors.New("splu: empty matrix")

	// ErrNilMatrix is returned when a nil matrix or factorization is used.
	ErrNilMatrix = errors.New("splu: nil matrix")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("splu: invalid option supplied")
)
