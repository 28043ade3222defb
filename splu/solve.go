package splu

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Solve solves A·x = b in place: on success b is overwritten with the
// solution; on error b is untouched (the substitution runs in a scratch
// vector). Returns ErrDimensionMismatch when len(b) != Order().
//
// Solve does not mutate the factorization and is safe to call from
// multiple goroutines with distinct b buffers.
func (f *Factorization[T]) Solve(b []T) error {
	if f == nil {
		return ErrNilMatrix
	}
	if len(b) != f.n {
		return fmt.Errorf("%w: order %d, len(rhs)=%d", ErrDimensionMismatch, f.n, len(b))
	}

	x := make([]T, f.n)
	// permute b into pivot row order: equation of original row i sits at
	// pivot position pinv[i]
	for i := 0; i < f.n; i++ {
		x[f.pinv[i]] = b[i]
	}

	// forward: L·y = P·b, unit lower triangular, column sweep
	for k := 0; k < f.n; k++ {
		xk := x[k]
		if xk == 0 {
			continue
		}
		for p := f.lp[k] + 1; p < f.lp[k+1]; p++ {
			x[f.li[p]] -= f.lx[p] * xk
		}
	}

	// backward: U·z = y, diagonal stored last per column
	for k := f.n - 1; k >= 0; k-- {
		pd := f.up[k+1] - 1
		x[k] /= f.ux[pd]
		xk := x[k]
		if xk == 0 {
			continue
		}
		for p := f.up[k]; p < pd; p++ {
			x[f.ui[p]] -= f.ux[p] * xk
		}
	}

	// undo the column preorder: pivot position k solved original column q[k]
	for k := 0; k < f.n; k++ {
		b[f.q[k]] = x[k]
	}

	return nil
}

// SolveMany solves A·X = B for multiple independent right-hand-side
// columns sharing this single factorization, one goroutine per column.
// All column lengths are validated before any column is overwritten.
func (f *Factorization[T]) SolveMany(cols [][]T) error {
	if f == nil {
		return ErrNilMatrix
	}
	for idx, b := range cols {
		if len(b) != f.n {
			return fmt.Errorf("%w: order %d, len(rhs[%d])=%d", ErrDimensionMismatch, f.n, idx, len(b))
		}
	}

	var g errgroup.Group
	for _, b := range cols {
		b := b
		g.Go(func() error {
			return f.Solve(b)
		})
	}

	return g.Wait()
}

// SolveTransposed solves Aᵀ·x = b in place, reusing the factors of A:
// Aᵀ = Qᵀ·Uᵀ·Lᵀ·Pᵀ, so the sweep order and the roles of the two
// permutations are exchanged.
func (f *Factorization[T]) SolveTransposed(b []T) error {
	if f == nil {
		return ErrNilMatrix
	}
	if len(b) != f.n {
		return fmt.Errorf("%w: order %d, len(rhs)=%d", ErrDimensionMismatch, f.n, len(b))
	}

	x := make([]T, f.n)
	// b is indexed by original column; pivot position k owns column q[k]
	for k := 0; k < f.n; k++ {
		x[k] = b[f.q[k]]
	}

	// forward: Uᵀ·y = b, lower triangular via the columns of U
	for k := 0; k < f.n; k++ {
		pd := f.up[k+1] - 1
		for p := f.up[k]; p < pd; p++ {
			x[k] -= f.ux[p] * x[f.ui[p]]
		}
		x[k] /= f.ux[pd]
	}

	// backward: Lᵀ·z = y via the columns of L, unit diagonal
	for k := f.n - 1; k >= 0; k-- {
		for p := f.lp[k] + 1; p < f.lp[k+1]; p++ {
			x[k] -= f.lx[p] * x[f.li[p]]
		}
	}

	// undo the row permutation: pivot position k came from original row i
	// with pinv[i] == k
	for i := 0; i < f.n; i++ {
		b[i] = x[f.pinv[i]]
	}

	return nil
}
