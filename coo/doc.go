// Package coo implements coordinate-format (triplet) assembly of sparse
// complex matrices and their compression into compressed-sparse-column
// form.
//
// A Matrix accumulates (row, col, value) contributions: repeated additions
// at the same coordinate are summed, never overwritten, matching the
// stamping semantics of circuit and FEM assembly where several elements
// contribute to one node. Once assembled, Compress produces a frozen CSC
// structure that the splu package factorizes; the builder itself stays
// mutable and may keep receiving contributions afterwards.
//
// Complexity:
//
//   - AddElement: amortized O(1) (append).
//   - Get: O(nnz) scan with summation.
//   - Compress: O(nnz log nnz) for the column-major sort, O(nnz) merge.
package coo
