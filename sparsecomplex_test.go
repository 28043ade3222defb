package sparsecomplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	sparsecomplex "github.com/felipemarkson/sparse-complex"
	"github.com/felipemarkson/sparse-complex/cnum"
	"github.com/felipemarkson/sparse-complex/coo"
)

func TestSolveConcreteScenario(t *testing.T) {
	a, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, complex(1, -1)))
	require.NoError(t, a.AddElement(1, 1, complex(-1, 1)))

	b := []complex128{complex(1, 0), complex(0, 1)}
	require.NoError(t, a.Solve(b))
	require.Equal(t, []complex128{complex(0.5, 0.5), complex(0.5, -0.5)}, b)
}

func TestSolveConcreteScenarioSinglePrecision(t *testing.T) {
	a, err := sparsecomplex.New[complex64]()
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, complex64(complex(1, -1))))
	require.NoError(t, a.AddElement(1, 1, complex64(complex(-1, 1))))

	b := []complex64{complex(1, 0), complex(0, 1)}
	require.NoError(t, a.Solve(b))
	require.InDelta(t, 0.5, float64(real(b[0])), 1e-6)
	require.InDelta(t, 0.5, float64(imag(b[0])), 1e-6)
	require.InDelta(t, 0.5, float64(real(b[1])), 1e-6)
	require.InDelta(t, -0.5, float64(imag(b[1])), 1e-6)
}

func TestSolveEmptyMatrix(t *testing.T) {
	a, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)

	err = a.Solve([]complex128{})
	require.ErrorIs(t, err, sparsecomplex.ErrEmptyMatrix)
}

func TestSolveDimensionMismatch(t *testing.T) {
	a, err := sparsecomplex.New[complex128](sparsecomplex.WithDimension(3))
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, 1))
	require.NoError(t, a.AddElement(1, 1, 1))
	require.NoError(t, a.AddElement(2, 2, 1))

	rhs := []complex128{1, 2}
	err = a.Solve(rhs)
	require.ErrorIs(t, err, sparsecomplex.ErrDimensionMismatch)
	require.Equal(t, []complex128{1, 2}, rhs)
}

func TestSolveSingular(t *testing.T) {
	a, err := sparsecomplex.New[complex128](sparsecomplex.WithDimension(2))
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, 1))
	require.NoError(t, a.AddElement(0, 1, 2))
	// row 1 stays empty

	err = a.Solve([]complex128{1, 1})
	require.ErrorIs(t, err, sparsecomplex.ErrSingular)
}

// TestMutationInvalidatesFactorization: a solve after AddElement must
// reflect the mutated matrix, not the previously factored one.
func TestMutationInvalidatesFactorization(t *testing.T) {
	a, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, 2))
	require.NoError(t, a.AddElement(1, 1, 2))

	b := []complex128{2, 2}
	require.NoError(t, a.Solve(b))
	require.Equal(t, []complex128{1, 1}, b)

	// accumulate: (0,0) becomes 2+2 = 4
	require.NoError(t, a.AddElement(0, 0, 2))
	b = []complex128{4, 2}
	require.NoError(t, a.Solve(b))
	require.Equal(t, []complex128{1, 1}, b)
}

func TestAccumulationMatchesSingleEntry(t *testing.T) {
	split, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	require.NoError(t, split.AddElement(0, 0, complex(1, 1)))
	require.NoError(t, split.AddElement(0, 0, complex(2, -4)))
	require.NoError(t, split.AddElement(1, 1, 1))

	joined, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	require.NoError(t, joined.AddElement(0, 0, complex(3, -3)))
	require.NoError(t, joined.AddElement(1, 1, 1))

	b1 := []complex128{complex(3, -3), 1}
	b2 := []complex128{complex(3, -3), 1}
	require.NoError(t, split.Solve(b1))
	require.NoError(t, joined.Solve(b2))
	require.Equal(t, b2, b1)
}

func TestNewFromEntriesAndAccessors(t *testing.T) {
	a, err := sparsecomplex.NewFromEntries([]coo.Entry[complex128]{
		{Row: 0, Col: 0, Val: complex(1, -1)},
		{Row: 1, Col: 1, Val: complex(-1, 1)},
	})
	require.NoError(t, err)

	require.Equal(t, 2, a.Order())
	require.Equal(t, 2, a.Len())

	v, ok := a.Get(0, 0)
	require.True(t, ok)
	require.Equal(t, complex(1, -1), v)
	_, ok = a.Get(2, 1)
	require.False(t, ok)

	c := a.Clone()
	require.True(t, a.Equal(c))
	require.NoError(t, c.AddElement(3, 3, complex(2, 2)))
	require.False(t, a.Equal(c))
	require.Equal(t, 4, c.Order())
}

func TestSolveMany(t *testing.T) {
	a, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, 2))
	require.NoError(t, a.AddElement(0, 1, 1))
	require.NoError(t, a.AddElement(1, 1, 4))

	cols := [][]complex128{
		{complex(3, 1), complex(4, 0)},
		{complex(2, 0), complex(8, 8)},
	}
	require.NoError(t, a.SolveMany(cols))

	// x = [ (b0 - x1)/2, b1/4 ]
	require.Equal(t, []complex128{complex(1, 0.5), complex(1, 0)}, cols[0])
	require.Equal(t, []complex128{complex(0, -1), complex(2, 2)}, cols[1])
}

func TestSolveTransposed(t *testing.T) {
	a, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, 2))
	require.NoError(t, a.AddElement(0, 1, 4))
	require.NoError(t, a.AddElement(1, 1, 2))

	// Aᵀ = [[2,0],[4,2]]; Aᵀx = [2, 8] → x = [1, 2]
	b := []complex128{2, 8}
	require.NoError(t, a.SolveTransposed(b))
	require.Equal(t, []complex128{1, 2}, b)
}

func TestDet(t *testing.T) {
	a, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	require.NoError(t, a.AddElement(0, 0, complex(1, -1)))
	require.NoError(t, a.AddElement(1, 1, complex(-1, 1)))

	det, err := a.Det()
	require.NoError(t, err)
	require.InDelta(t, 0, real(det), 1e-12)
	require.InDelta(t, 2, imag(det), 1e-12)
}

// TestRoundTripFacade: assemble, multiply, solve at both precisions
// through the facade.
func TestRoundTripFacade(t *testing.T) {
	a, err := sparsecomplex.New[complex128]()
	require.NoError(t, err)
	entries := []coo.Entry[complex128]{
		{Row: 0, Col: 0, Val: complex(5, 1)},
		{Row: 0, Col: 1, Val: complex(1, 0)},
		{Row: 1, Col: 0, Val: complex(0, -1)},
		{Row: 1, Col: 1, Val: complex(4, -2)},
		{Row: 2, Col: 2, Val: complex(3, 3)},
		{Row: 2, Col: 0, Val: complex(1, 1)},
	}
	require.NoError(t, a.AddElements(entries))

	x := []complex128{complex(1, 2), complex(-2, 0), complex(0, -1)}
	m, err := coo.NewFromEntries(entries)
	require.NoError(t, err)
	b := make([]complex128, 3)
	require.NoError(t, m.MulVec(b, x))

	require.NoError(t, a.Solve(b))
	for i := range x {
		require.Less(t, cnum.Abs(b[i]-x[i]), 1e-10)
	}
}
