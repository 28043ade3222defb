package cnum

import "math/cmplx"

// Complex is the scalar type-set of the library: IEEE-754 complex numbers
// with 32-bit or 64-bit floating-point components.
type Complex interface {
	complex64 | complex128
}

// Component machine epsilons (2^-23 and 2^-52).
const (
	eps32 = 1.1920928955078125e-07
	eps64 = 2.220446049250313e-16
)

// Round-trip solve tolerances per precision. A well-conditioned system
// solved at a given precision must reproduce the known solution within
// these bounds.
const (
	tol32 = 1e-4
	tol64 = 1e-9
)

// Abs returns the modulus |v|. Pivot magnitude comparisons during
// factorization are defined in terms of this value.
func Abs[T Complex](v T) float64 {
	return cmplx.Abs(complex128(v))
}

// IsZero reports whether v is exactly zero in both components.
func IsZero[T Complex](v T) bool {
	return v == 0
}

// Eps returns the component machine epsilon for the precision T.
func Eps[T Complex]() float64 {
	var z T
	if _, ok := any(z).(complex64); ok {
		return eps32
	}
	return eps64
}

// Tolerance returns the default residual tolerance for the precision T:
// 1e-4 for complex64 and 1e-9 for complex128.
func Tolerance[T Complex]() float64 {
	var z T
	if _, ok := any(z).(complex64); ok {
		return tol32
	}
	return tol64
}
