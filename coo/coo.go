package coo

import (
	"fmt"
	"strings"

	"github.com/felipemarkson/sparse-complex/cnum"
)

// Entry is one (row, col, value) contribution to a sparse matrix.
type Entry[T cnum.Complex] struct {
	Row, Col int
	Val      T
}

// Matrix accumulates coordinate-format entries of a square sparse matrix.
// It is mutable during assembly and owned by the caller; Compress produces
// the frozen view handed to the solver.
//
// Matrix is not safe for concurrent mutation.
type Matrix[T cnum.Complex] struct {
	dim     int // fixed order; 0 = inferred
	fixed   bool
	maxIdx  int // largest row/col observed, -1 when empty
	entries []Entry[T]
}

// New creates an empty coordinate matrix.
// Returns ErrOptionViolation if an option carries an invalid value.
func New[T cnum.Complex](opts ...Option) (*Matrix[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Matrix[T]{
		dim:     o.Dimension,
		fixed:   o.Dimension > 0,
		maxIdx:  -1,
		entries: make([]Entry[T], 0, o.Capacity),
	}, nil
}

// NewFromEntries creates a matrix pre-loaded with the given entries.
func NewFromEntries[T cnum.Complex](entries []Entry[T], opts ...Option) (*Matrix[T], error) {
	m, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	if err = m.AddElements(entries); err != nil {
		return nil, err
	}

	return m, nil
}

// AddElement appends the contribution v at (row, col). A later contribution
// at the same coordinate is summed with the earlier ones, never replaced.
// Returns ErrOutOfRange for negative indices, or for indices outside a
// fixed dimension.
func (m *Matrix[T]) AddElement(row, col int, v T) error {
	if m == nil {
		return ErrNilMatrix
	}
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	if m.fixed && (row >= m.dim || col >= m.dim) {
		return fmt.Errorf("%w: (%d,%d) outside order %d", ErrOutOfRange, row, col, m.dim)
	}

	m.entries = append(m.entries, Entry[T]{Row: row, Col: col, Val: v})
	if row > m.maxIdx {
		m.maxIdx = row
	}
	if col > m.maxIdx {
		m.maxIdx = col
	}

	return nil
}

// AddElements appends one contribution per entry, in order.
// On the first invalid entry the matrix keeps the entries added so far and
// the error is returned.
func (m *Matrix[T]) AddElements(entries []Entry[T]) error {
	for _, e := range entries {
		if err := m.AddElement(e.Row, e.Col, e.Val); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the accumulated value at (row, col) and whether any
// contribution targeted that coordinate.
func (m *Matrix[T]) Get(row, col int) (T, bool) {
	var sum T
	found := false
	for _, e := range m.entries {
		if e.Row == row && e.Col == col {
			sum += e.Val
			found = true
		}
	}

	return sum, found
}

// Order returns the square order of the matrix: the fixed dimension when
// one was supplied, otherwise the maximum observed index plus one.
func (m *Matrix[T]) Order() int {
	if m.fixed {
		return m.dim
	}

	return m.maxIdx + 1
}

// Len returns the raw number of accumulated triplets (before duplicate
// merging; NNZ of the compressed form may be smaller).
func (m *Matrix[T]) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the accumulated triplets in insertion order.
func (m *Matrix[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(m.entries))
	copy(out, m.entries)

	return out
}

// Clone returns an independent deep copy of the builder.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		dim:     m.dim,
		fixed:   m.fixed,
		maxIdx:  m.maxIdx,
		entries: m.Entries(),
	}
}

// Equal reports whether two builders hold the same triplet sequence and
// the same declared dimension.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.fixed != other.fixed || m.dim != other.dim || len(m.entries) != len(other.entries) {
		return false
	}
	for i, e := range m.entries {
		if e != other.entries[i] {
			return false
		}
	}

	return true
}

// MulVec computes dst = A·x over the raw triplets. Duplicates contribute
// additively, so the product matches the compressed form exactly.
// Complexity: O(nnz).
func (m *Matrix[T]) MulVec(dst, x []T) error {
	if m == nil {
		return ErrNilMatrix
	}
	n := m.Order()
	if len(x) != n || len(dst) != n {
		return fmt.Errorf("%w: order %d, len(x)=%d, len(dst)=%d", ErrDimensionMismatch, n, len(x), len(dst))
	}

	for i := range dst {
		dst[i] = 0
	}
	for _, e := range m.entries {
		dst[e.Row] += e.Val * x[e.Col]
	}

	return nil
}

// String renders the triplets one per line as "(r,c) -> a + jb".
func (m *Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString("ComplexMatrix {\n")
	for _, e := range m.entries {
		v := complex128(e.Val)
		if imag(v) < 0 {
			fmt.Fprintf(&b, "  (%d,%d) -> %v - j%v\n", e.Row, e.Col, real(v), -imag(v))
		} else {
			fmt.Fprintf(&b, "  (%d,%d) -> %v + j%v\n", e.Row, e.Col, real(v), imag(v))
		}
	}
	b.WriteString("}")

	return b.String()
}
