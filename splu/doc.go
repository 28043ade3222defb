// Package splu implements direct sparse LU factorization and triangular
// solves for square complex matrices in compressed-sparse-column form.
//
// Factorize performs a left-looking (Gilbert–Peierls) elimination: for
// each column it computes the symbolic reach of the column's pattern
// through the partially built L factor, applies the numeric left-looking
// update in topological order, and selects a pivot by complex modulus
// under threshold partial pivoting. The result satisfies
//
//	P · A · Q = L · U
//
// with L unit lower triangular, U upper triangular, P a row permutation
// chosen for numerical stability and Q a column preorder chosen to limit
// fill-in (ascending nonzero count by default).
//
// A Factorization is immutable after creation: Solve, SolveTransposed and
// SolveMany never mutate it, so one factorization may serve many
// right-hand sides, including concurrently. Each solve works in a scratch
// vector and writes the caller's buffer only after it has fully
// succeeded, so a failed call leaves the input untouched.
//
// Complexity: factorization cost depends on fill-in; each subsequent
// solve is O(nnz(L) + nnz(U)).
package splu
