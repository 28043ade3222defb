package coo

import "fmt"

// Option configures matrix assembly via functional arguments.
// An invalid Option (e.g. negative dimension) is recorded internally and
// surfaced as ErrOptionViolation by the constructor.
type Option func(*Options)

// Options holds assembly parameters.
type Options struct {
	// Dimension fixes the square order of the matrix. When > 0, AddElement
	// rejects indices outside [0, Dimension) with ErrOutOfRange. When 0,
	// the order is inferred as the maximum observed index plus one.
	Dimension int

	// Capacity pre-allocates the triplet slice.
	Capacity int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with inferred dimension and no
// pre-allocation.
func DefaultOptions() Options {
	return Options{Dimension: 0, Capacity: 0}
}

// WithDimension fixes the square order of the matrix.
//
//	n > 0:  indices must lie in [0, n)
//	n == 0: explicit inference from observed indices
//	n < 0:  invalid option, surfaced as ErrOptionViolation
func WithDimension(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: dimension cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Dimension = n
	}
}

// WithCapacity pre-allocates room for nnz triplets.
func WithCapacity(nnz int) Option {
	return func(o *Options) {
		if nnz < 0 {
			o.err = fmt.Errorf("%w: capacity cannot be negative (%d)", ErrOptionViolation, nnz)
			return
		}
		o.Capacity = nnz
	}
}
