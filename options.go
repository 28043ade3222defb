package sparsecomplex

import (
	"github.com/felipemarkson/sparse-complex/coo"
	"github.com/felipemarkson/sparse-complex/splu"
)

// Option configures a ComplexMatrix, forwarding to the assembly and
// solver packages as appropriate.
type Option func(*config)

type config struct {
	cooOpts []coo.Option
	luOpts  []splu.Option
}

// WithDimension fixes the square order of the matrix; without it the
// order is inferred from the maximum observed index plus one.
func WithDimension(n int) Option {
	return func(c *config) {
		c.cooOpts = append(c.cooOpts, coo.WithDimension(n))
	}
}

// WithCapacity pre-allocates room for nnz coordinate entries.
func WithCapacity(nnz int) Option {
	return func(c *config) {
		c.cooOpts = append(c.cooOpts, coo.WithCapacity(nnz))
	}
}

// WithPivotTolerance sets the relative diagonal-preference threshold of
// the factorization, in (0, 1]. 1 (the default) is strict partial
// pivoting; smaller values keep diagonal pivots on diagonally dominant
// systems, reducing fill-in.
func WithPivotTolerance(t float64) Option {
	return func(c *config) {
		c.luOpts = append(c.luOpts, splu.WithPivotTolerance(t))
	}
}

// WithZeroTolerance sets the absolute modulus below or at which a pivot
// is rejected as numerically zero.
func WithZeroTolerance(tol float64) Option {
	return func(c *config) {
		c.luOpts = append(c.luOpts, splu.WithZeroTolerance(tol))
	}
}

// WithOrdering selects the fill-reducing column preorder.
func WithOrdering(ord splu.Ordering) Option {
	return func(c *config) {
		c.luOpts = append(c.luOpts, splu.WithOrdering(ord))
	}
}
