package splu

import "fmt"

// Ordering selects the fill-reducing column preorder applied before
// factorization.
type Ordering int

const (
	// OrderMinDegree factors columns in ascending order of their nonzero
	// count (a static minimum-degree heuristic). Ties keep natural order,
	// so the permutation is deterministic.
	OrderMinDegree Ordering = iota

	// OrderNatural factors columns in their given order.
	OrderNatural
)

// Pivoting defaults. PivotTolerance follows the relative-threshold scheme
// of classic sparse solvers: a pivot candidate at the diagonal is accepted
// when its modulus is at least PivotTolerance times the largest eligible
// modulus in the column. 1.0 means strict partial pivoting.
const (
	DefaultPivotTolerance = 1.0
	DefaultZeroTolerance  = 0.0
)

// Option configures factorization via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Factorize is invoked.
type Option func(*Options)

// Options holds factorization parameters.
type Options struct {
	// PivotTolerance is the relative diagonal-preference threshold in
	// (0, 1]. Values below 1 keep the diagonal pivot whenever it is within
	// the threshold of the column maximum, trading a bounded element
	// growth for less fill-in on diagonally dominant systems.
	PivotTolerance float64

	// ZeroTolerance is the absolute modulus below or at which a pivot is
	// rejected as numerically zero. The default rejects only exact zeros.
	ZeroTolerance float64

	// Order selects the column preorder.
	Order Ordering

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with strict partial pivoting, exact-zero
// pivot rejection and the minimum-degree column preorder.
func DefaultOptions() Options {
	return Options{
		PivotTolerance: DefaultPivotTolerance,
		ZeroTolerance:  DefaultZeroTolerance,
		Order:          OrderMinDegree,
	}
}

// WithPivotTolerance sets the relative diagonal-preference threshold.
// t must lie in (0, 1].
func WithPivotTolerance(t float64) Option {
	return func(o *Options) {
		if t <= 0 || t > 1 {
			o.err = fmt.Errorf("%w: pivot tolerance %v outside (0,1]", ErrOptionViolation, t)
			return
		}
		o.PivotTolerance = t
	}
}

// WithZeroTolerance sets the absolute pivot rejection threshold.
// tol must be non-negative.
func WithZeroTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 {
			o.err = fmt.Errorf("%w: zero tolerance cannot be negative (%v)", ErrOptionViolation, tol)
			return
		}
		o.ZeroTolerance = tol
	}
}

// WithOrdering selects the column preorder.
func WithOrdering(ord Ordering) Option {
	return func(o *Options) {
		if ord != OrderMinDegree && ord != OrderNatural {
			o.err = fmt.Errorf("%w: unknown ordering %d", ErrOptionViolation, ord)
			return
		}
		o.Order = ord
	}
}
