package coo

import (
	"fmt"
	"sort"

	"github.com/felipemarkson/sparse-complex/cnum"
)

// CSC is a compressed-sparse-column view of an assembled matrix.
// Entries within each column are sorted by row and duplicates are merged
// by summation, which makes factorization behavior deterministic for a
// given triplet multiset. A CSC is logically frozen: the solver borrows it
// read-only and the builder that produced it is unaffected.
type CSC[T cnum.Complex] struct {
	n      int
	colPtr []int // len n+1; column j occupies rowInd[colPtr[j]:colPtr[j+1]]
	rowInd []int
	values []T
}

// Compress converts the accumulated triplets into compressed-sparse-column
// form. Duplicate coordinates are combined by summation; entries whose sum
// is exactly zero are kept, so the structural pattern reflects every
// stamped coordinate.
func (m *Matrix[T]) Compress() (*CSC[T], error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Order()

	// Sort an index permutation column-major, then row. SliceStable keeps
	// the merge order of equal coordinates identical to insertion order.
	perm := make([]int, len(m.entries))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ea, eb := m.entries[perm[a]], m.entries[perm[b]]
		if ea.Col != eb.Col {
			return ea.Col < eb.Col
		}
		return ea.Row < eb.Row
	})

	c := &CSC[T]{
		n:      n,
		colPtr: make([]int, n+1),
		rowInd: make([]int, 0, len(m.entries)),
		values: make([]T, 0, len(m.entries)),
	}

	col := 0
	for k := 0; k < len(perm); k++ {
		e := m.entries[perm[k]]
		last := len(c.rowInd) - 1
		if last >= 0 && col == e.Col && c.rowInd[last] == e.Row {
			c.values[last] += e.Val // merge duplicate coordinate
			continue
		}
		for col < e.Col {
			col++
			c.colPtr[col] = len(c.rowInd)
		}
		c.rowInd = append(c.rowInd, e.Row)
		c.values = append(c.values, e.Val)
	}
	for col < n {
		col++
		c.colPtr[col] = len(c.rowInd)
	}

	return c, nil
}

// Order returns the square order of the matrix.
func (c *CSC[T]) Order() int {
	return c.n
}

// NNZ returns the number of stored entries after duplicate merging.
func (c *CSC[T]) NNZ() int {
	return len(c.rowInd)
}

// At returns the stored value at (row, col), or zero when the coordinate
// is not part of the pattern. Complexity: O(log nnz(col)).
func (c *CSC[T]) At(row, col int) T {
	var zero T
	if row < 0 || col < 0 || row >= c.n || col >= c.n {
		return zero
	}
	lo, hi := c.colPtr[col], c.colPtr[col+1]
	p := lo + sort.SearchInts(c.rowInd[lo:hi], row)
	if p < hi && c.rowInd[p] == row {
		return c.values[p]
	}

	return zero
}

// MulVec computes dst = A·x over the compressed form. Complexity: O(nnz).
func (c *CSC[T]) MulVec(dst, x []T) error {
	if c == nil {
		return ErrNilMatrix
	}
	if len(x) != c.n || len(dst) != c.n {
		return fmt.Errorf("%w: order %d, len(x)=%d, len(dst)=%d", ErrDimensionMismatch, c.n, len(x), len(dst))
	}

	for i := range dst {
		dst[i] = 0
	}
	for j := 0; j < c.n; j++ {
		xj := x[j]
		if cnum.IsZero(xj) {
			continue
		}
		for p := c.colPtr[j]; p < c.colPtr[j+1]; p++ {
			dst[c.rowInd[p]] += c.values[p] * xj
		}
	}

	return nil
}

// Col exposes one compressed column as parallel row-index and value
// slices. The slices alias internal storage and must not be mutated.
func (c *CSC[T]) Col(j int) (rows []int, vals []T) {
	lo, hi := c.colPtr[j], c.colPtr[j+1]

	return c.rowInd[lo:hi], c.values[lo:hi]
}

// ColCounts returns the per-column entry counts, used by fill-reducing
// column preorders.
func (c *CSC[T]) ColCounts() []int {
	counts := make([]int, c.n)
	for j := 0; j < c.n; j++ {
		counts[j] = c.colPtr[j+1] - c.colPtr[j]
	}

	return counts
}
