// Package cnum defines the complex scalar policy shared by the assembly
// and solver packages: the precision type-set, modulus-based magnitude,
// and the per-precision numeric tolerances.
//
// Precision is a compile-time type parameter, not a runtime flag, so a
// complex64 matrix can never be solved against complex128 vectors (or
// vice versa) within one matrix/solve pair.
package cnum
