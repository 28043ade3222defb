package splu

import (
	"fmt"
	"sort"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/felipemarkson/sparse-complex/cnum"
	"github.com/felipemarkson/sparse-complex/coo"
	"github.com/felipemarkson/sparse-complex/logger"
)

// Factorization holds the sparse triangular factors and permutations of
// P·A·Q = L·U. It is immutable after Factorize returns; solves treat it
// as shared read-only state.
type Factorization[T cnum.Complex] struct {
	n int

	// L, compressed columns in pivot order. The first entry of each
	// column is the unit diagonal.
	lp, li []int
	lx     []T

	// U, compressed columns in pivot order. The last entry of each
	// column is the diagonal.
	up, ui []int
	ux     []T

	pinv []int // row permutation: original row -> pivot position
	q    []int // column preorder: pivot position -> original column
}

// factorizer carries the in-progress factors plus the per-column
// workspaces of the left-looking elimination.
type factorizer[T cnum.Complex] struct {
	n int
	a *coo.CSC[T]

	lp, li []int
	lx     []T
	up, ui []int
	ux     []T

	pinv []int
	q    []int

	x      []T   // dense accumulator for the current column
	xi     []int // reach pattern, filled from the top down
	stack  []int // DFS vertex stack
	pstack []int // DFS resume positions
	marked *bitset.BitSet
}

// Factorize computes a sparse LU factorization of a with threshold
// partial pivoting by complex modulus and a fill-reducing column
// preorder.
//
// Returns ErrEmptyMatrix for a zero-order input, ErrSingular when some
// column has no eligible pivot row left (structurally singular pattern,
// such as an all-zero row), and ErrZeroPivot when the best candidate's
// modulus is not above the zero tolerance. On error no factorization is
// returned; there is no partially factored state to misuse.
func Factorize[T cnum.Complex](a *coo.CSC[T], opts ...Option) (*Factorization[T], error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := a.Order()
	if n == 0 {
		return nil, ErrEmptyMatrix
	}

	start := time.Now()
	nnz := a.NNZ()
	f := &factorizer[T]{
		n: n,
		a: a,

		lp: make([]int, n+1),
		li: make([]int, 0, 2*nnz+n),
		lx: make([]T, 0, 2*nnz+n),
		up: make([]int, n+1),
		ui: make([]int, 0, 2*nnz+n),
		ux: make([]T, 0, 2*nnz+n),

		pinv: make([]int, n),
		q:    columnOrder(a, o.Order),

		x:      make([]T, n),
		xi:     make([]int, n),
		stack:  make([]int, n),
		pstack: make([]int, n),
		marked: bitset.New(uint(n)),
	}
	for i := range f.pinv {
		f.pinv[i] = -1
	}

	for k := 0; k < n; k++ {
		f.lp[k] = len(f.li)
		f.up[k] = len(f.ui)
		col := f.q[k]

		top := f.spSolve(col)

		// Pivot search: the largest modulus among rows not yet pivotal.
		// Rows already pivotal belong to U(:,k).
		ipiv, amax := -1, -1.0
		for p := top; p < n; p++ {
			i := f.xi[p]
			if f.pinv[i] < 0 {
				if t := cnum.Abs(f.x[i]); t > amax {
					amax, ipiv = t, i
				}
			} else {
				f.ui = append(f.ui, f.pinv[i])
				f.ux = append(f.ux, f.x[i])
			}
		}
		if ipiv < 0 {
			return nil, fmt.Errorf("%w: no eligible pivot row for column %d", ErrSingular, col)
		}
		if amax <= o.ZeroTolerance {
			return nil, fmt.Errorf("%w: column %d, best candidate modulus %.3e", ErrZeroPivot, col, amax)
		}
		// Threshold pivoting: keep the diagonal when it is within
		// PivotTolerance of the column maximum.
		if f.pinv[col] < 0 && cnum.Abs(f.x[col]) >= amax*o.PivotTolerance {
			ipiv = col
		}

		pivot := f.x[ipiv]
		f.ui = append(f.ui, k) // U diagonal, stored last in the column
		f.ux = append(f.ux, pivot)
		f.pinv[ipiv] = k
		f.li = append(f.li, ipiv) // L unit diagonal, stored first
		f.lx = append(f.lx, T(1))
		for p := top; p < n; p++ {
			i := f.xi[p]
			if f.pinv[i] < 0 {
				f.li = append(f.li, i)
				f.lx = append(f.lx, f.x[i]/pivot)
			}
			f.x[i] = 0 // leave the accumulator clean for the next column
		}
	}
	f.lp[n] = len(f.li)
	f.up[n] = len(f.ui)

	// L row indices were recorded before their rows became pivotal;
	// rewrite them into pivot order.
	for p := range f.li {
		f.li[p] = f.pinv[f.li[p]]
	}

	log := logger.Logger()
	log.Debug().
		Int("order", n).
		Int("nnz", nnz).
		Int("lnz", len(f.li)).
		Int("unz", len(f.ui)).
		Dur("took", time.Since(start)).
		Msg("sparse LU factorized")

	return &Factorization[T]{
		n:    n,
		lp:   f.lp,
		li:   f.li,
		lx:   f.lx,
		up:   f.up,
		ui:   f.ui,
		ux:   f.ux,
		pinv: f.pinv,
		q:    f.q,
	}, nil
}

// columnOrder builds the column preorder q: pivot position -> original
// column. OrderMinDegree sorts columns by ascending nonzero count with a
// stable tie-break on the natural order.
func columnOrder[T cnum.Complex](a *coo.CSC[T], ord Ordering) []int {
	n := a.Order()
	q := make([]int, n)
	for j := range q {
		q[j] = j
	}
	if ord == OrderMinDegree {
		counts := a.ColCounts()
		sort.SliceStable(q, func(x, y int) bool {
			return counts[q[x]] < counts[q[y]]
		})
	}

	return q
}

// Order returns the order of the factorized matrix.
func (f *Factorization[T]) Order() int {
	return f.n
}

// NNZ returns the total number of stored entries in L and U, including
// both diagonals. NNZ minus the input nonzero count measures fill-in.
func (f *Factorization[T]) NNZ() int {
	return len(f.li) + len(f.ui)
}
