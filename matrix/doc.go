// Package matrix offers the dense numeric substrate for graph measures.
//
// The matrix package provides:
//
//   - Matrix, a minimal bounds-checked interface, and Dense, its row-major
//     implementation with a per-instance NaN/Inf policy.
//   - Validators (ValidateSquareNonNil, ValidateFinite, ValidateNonNegative,
//     ValidateSymmetric) returning package sentinels.
//   - Reductions (RowSums, ColSums, MatVec) and NormalizeRowSums, which turns an
//     adjacency matrix into a row-stochastic random-walk matrix.
//
// Every kernel takes a fast path on *Dense and falls back to At/Set for other
// implementations. Sums accumulate strictly left to right in a fixed loop order,
// so repeated runs agree bit for bit; against pairwise-summing tools they agree
// within rounding.
//
// Numeric policy is configured with functional options:
//
//	m, err := matrix.NewDenseFrom(rows)                               // rejects NaN/Inf
//	w, s, err := matrix.NormalizeRowSums(m, matrix.WithNoValidateNaNInf()) // lets 0/0 through
//
// See the examples in this package for usage patterns.
package matrix
