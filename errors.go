package sparsecomplex

import (
	"github.com/felipemarkson/sparse-complex/coo"
	"github.com/felipemarkson/sparse-complex/splu"
)

// Sentinel errors re-exported from the assembly and solver packages, so
// callers of the facade match with errors.Is against a single surface.
var (
	// ErrSingular: elimination ran out of eligible pivot rows
	// (structurally singular pattern, e.g. an all-zero row).
	ErrSingular = splu.ErrSingular

	// ErrZeroPivot: the best pivot candidate is numerically zero.
	ErrZeroPivot = splu.ErrZeroPivot

	// ErrDimensionMismatch: a right-hand side length differs from the
	// matrix order.
	ErrDimensionMismatch = splu.ErrDimensionMismatch

	// ErrEmptyMatrix: Solve was invoked on a zero-order matrix.
	ErrEmptyMatrix = splu.ErrEmptyMatrix

	// ErrOutOfRange: a negative index, or an index outside a fixed
	// dimension, was passed to AddElement.
	ErrOutOfRange = coo.ErrOutOfRange
)
