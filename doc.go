// Package sparsecomplex solves sparse complex-valued linear systems
// A·x = b by direct sparse LU factorization.
//
// A ComplexMatrix is assembled from coordinate entries and solved in
// place:
//
//	a, _ := sparsecomplex.New[complex128]()
//	_ = a.AddElement(0, 0, complex(1, 1))
//	_ = a.AddElement(1, 1, complex(1, 1))
//
//	b := []complex128{complex(1, 0), complex(0, 1)}
//	if err := a.Solve(b); err != nil {
//		// handle sparsecomplex.ErrSingular, ...
//	}
//	// b now holds x = [0.5-0.5i, 0.5+0.5i]
//
// Contributions at the same coordinate are summed, matching the stamping
// semantics of circuit and FEM assembly. Precision is a type parameter
// (complex64 or complex128), so the two precisions cannot mix within one
// matrix/solve pair.
//
// The heavy lifting is organized under three subpackages:
//
//	cnum/ — complex scalar constraint and numeric tolerances
//	coo/  — coordinate (triplet) assembly and compressed-column form
//	splu/ — sparse LU factorization and triangular solves
//
// Solve factorizes on first use and caches the factorization; any
// subsequent AddElement invalidates the cache, so a mutated matrix is
// always refactored before the next solve.
package sparsecomplex
