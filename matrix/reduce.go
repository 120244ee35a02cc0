// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide row/column reductions and row-sum normalization as deterministic kernels.
//   - Keep tight loops centralized here so callers never re-implement them.
//
// Exposed API:
//   - MatVec(m, x)               -> y                 // y = m·x
//   - RowSums(m)                 -> r                 // r[i] = Σ_j m[i,j]
//   - ColSums(m)                 -> c                 // c[j] = Σ_i m[i,j]
//   - NormalizeRowSums(m, opts)  -> (Y, sums)         // Y[i,j] = m[i,j] / Σ_j m[i,j]
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops; sums accumulate left to right.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths.
//   - NormalizeRowSums divides by the signed sum (not the L1 norm); a zero row yields
//     NaN, which the default numeric policy rejects with ErrNaNInf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec           = "MatVec"
	opRowSums          = "RowSums"
	opColSums          = "ColSums"
	opNormalizeRowSums = "NormalizeRowSums"
)

// matrixErrorf wraps err as "<tag>: <err>" and keeps it matchable by errors.Is.
// Callers gate with `if err != nil`; never pass a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
//
// AI-Hints: out-degree of node i under the row-source convention; feeds random-walk normalization.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}

	y, err := MatVec(m, ones)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return y, nil
}

// ColSums returns vector c where c[j] = sum_i m[i,j].
// Accumulates down each column in fixed i order.
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)

	var i, j int
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out[j] += d.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// NormalizeRowSums returns Y with Y[i,j] = X[i,j] / s[i], s[i] = Σ_j X[i,j],
// and the sums s.
//
// Implementation:
//   - Stage 1: validate X non-nil; compute s via RowSums.
//   - Stage 2: allocate Y with the numeric policy resolved from opts.
//   - Stage 3: divide each element by its row sum (true division, not a reciprocal multiply).
//
// Behavior highlights:
//   - Rows with s[i] == 0 produce NaN (0/0) or ±Inf; under the default policy this
//     fails with ErrNaNInf and the offending coordinates. With WithNoValidateNaNInf
//     the non-finite values are stored as-is.
//   - X is never mutated.
//
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowSums(X Matrix, opts ...Option) (Matrix, []float64, error) {
	sums, err := RowSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	Y, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowSums, err)
	}

	var i, j, base int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base = i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j] / sums[i]
				if Y.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
					return nil, nil, matrixErrorf(opNormalizeRowSums, denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
				Y.data[base+j] = v
			}
		}

		return Y, sums, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowSums, err)
			}
			if err = Y.Set(i, j, v/sums[i]); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowSums, err)
			}
		}
	}

	return Y, sums, nil
}
