// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Force non-*Dense fallback paths so fast and slow paths can be compared.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphinfo/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their At/Set fallback path.
type hide struct{ matrix.Matrix }

// MustDenseFrom builds a *Dense from rows or fails the test.
func MustDenseFrom(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// asymmetric3 is a 3×3 directed graph whose row and column sums differ:
// rows [3,4,2], cols [4,2,3].
func asymmetric3() [][]float64 {
	return [][]float64{
		{0, 1, 2},
		{3, 0, 1},
		{1, 1, 0},
	}
}
