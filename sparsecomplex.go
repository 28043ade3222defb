package sparsecomplex

import (
	"github.com/felipemarkson/sparse-complex/cnum"
	"github.com/felipemarkson/sparse-complex/coo"
	"github.com/felipemarkson/sparse-complex/splu"
)

// ComplexMatrix is a square sparse complex matrix assembled from
// coordinate entries and solved by direct sparse LU factorization.
//
// The zero value is not usable; construct with New or NewFromEntries.
// ComplexMatrix is not safe for concurrent mutation; a factorized matrix
// may serve concurrent solves through SolveMany.
type ComplexMatrix[T cnum.Complex] struct {
	m      *coo.Matrix[T]
	luOpts []splu.Option

	// fact caches the factorization of the current triplet set. Any
	// mutation clears it, so a solve never runs against stale factors.
	fact *splu.Factorization[T]
}

// New creates an empty ComplexMatrix.
func New[T cnum.Complex](opts ...Option) (*ComplexMatrix[T], error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	m, err := coo.New[T](c.cooOpts...)
	if err != nil {
		return nil, err
	}

	return &ComplexMatrix[T]{m: m, luOpts: c.luOpts}, nil
}

// NewFromEntries creates a ComplexMatrix pre-loaded with the given
// coordinate entries.
func NewFromEntries[T cnum.Complex](entries []coo.Entry[T], opts ...Option) (*ComplexMatrix[T], error) {
	a, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	if err = a.AddElements(entries); err != nil {
		return nil, err
	}

	return a, nil
}

// AddElement adds the contribution v at (row, col). Contributions at the
// same coordinate accumulate by summation. Any cached factorization is
// invalidated.
func (a *ComplexMatrix[T]) AddElement(row, col int, v T) error {
	if err := a.m.AddElement(row, col, v); err != nil {
		return err
	}
	a.fact = nil

	return nil
}

// AddElements adds one contribution per entry, in order.
func (a *ComplexMatrix[T]) AddElements(entries []coo.Entry[T]) error {
	if err := a.m.AddElements(entries); err != nil {
		a.fact = nil // a prefix may have been added before the failure
		return err
	}
	a.fact = nil

	return nil
}

// Get returns the accumulated value at (row, col) and whether any
// contribution targeted that coordinate.
func (a *ComplexMatrix[T]) Get(row, col int) (T, bool) {
	return a.m.Get(row, col)
}

// Order returns the square order of the matrix.
func (a *ComplexMatrix[T]) Order() int {
	return a.m.Order()
}

// Len returns the number of accumulated coordinate entries.
func (a *ComplexMatrix[T]) Len() int {
	return a.m.Len()
}

// Clone returns an independent deep copy. The clone shares no state with
// the original and starts without a cached factorization.
func (a *ComplexMatrix[T]) Clone() *ComplexMatrix[T] {
	return &ComplexMatrix[T]{m: a.m.Clone(), luOpts: a.luOpts}
}

// Equal reports whether both matrices hold the same entry sequence and
// declared dimension.
func (a *ComplexMatrix[T]) Equal(other *ComplexMatrix[T]) bool {
	if a == nil || other == nil {
		return a == other
	}

	return a.m.Equal(other.m)
}

// String renders the entries one per line as "(r,c) -> a + jb".
func (a *ComplexMatrix[T]) String() string {
	return a.m.String()
}

// factorize returns the cached factorization, computing it first when a
// mutation (or nothing yet) invalidated it.
func (a *ComplexMatrix[T]) factorize() (*splu.Factorization[T], error) {
	if a.fact != nil {
		return a.fact, nil
	}
	csc, err := a.m.Compress()
	if err != nil {
		return nil, err
	}
	fact, err := splu.Factorize(csc, a.luOpts...)
	if err != nil {
		return nil, err
	}
	a.fact = fact

	return fact, nil
}

// Solve solves A·x = rhs in place: on success rhs is overwritten with
// the solution, on error it is untouched. len(rhs) must equal Order().
//
// The factorization is computed on first use and reused by subsequent
// solves until the matrix is mutated.
func (a *ComplexMatrix[T]) Solve(rhs []T) error {
	fact, err := a.factorize()
	if err != nil {
		return err
	}

	return fact.Solve(rhs)
}

// SolveMany solves A·X = B for several independent right-hand-side
// columns, sharing a single factorization across concurrent column
// solves.
func (a *ComplexMatrix[T]) SolveMany(cols [][]T) error {
	fact, err := a.factorize()
	if err != nil {
		return err
	}

	return fact.SolveMany(cols)
}

// SolveTransposed solves Aᵀ·x = rhs in place, reusing the factors of A.
func (a *ComplexMatrix[T]) SolveTransposed(rhs []T) error {
	fact, err := a.factorize()
	if err != nil {
		return err
	}

	return fact.SolveTransposed(rhs)
}

// Det returns the determinant of the matrix, factorizing if needed.
func (a *ComplexMatrix[T]) Det() (T, error) {
	fact, err := a.factorize()
	if err != nil {
		var zero T
		return zero, err
	}

	return fact.Det(), nil
}
