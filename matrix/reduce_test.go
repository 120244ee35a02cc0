// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphinfo/matrix"
)

func TestRowColSums_FastAndFallback(t *testing.T) {
	t.Parallel()

	A := MustDenseFrom(t, asymmetric3())
	for name, m := range map[string]matrix.Matrix{"dense": A, "fallback": hide{A}} {
		rs, err := matrix.RowSums(m)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{3, 4, 2}, rs, name)

		cs, err := matrix.ColSums(m)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{4, 2, 3}, cs, name)
	}
}

func TestRowColSums_RectangularAndNil(t *testing.T) {
	t.Parallel()

	m := MustDenseFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rs, err := matrix.RowSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 15}, rs)
	cs, err := matrix.ColSums(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, cs)

	_, err = matrix.RowSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ColSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRowColSums_SymmetricAgree(t *testing.T) {
	t.Parallel()

	sym := MustDenseFrom(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	rs, err := matrix.RowSums(sym)
	require.NoError(t, err)
	cs, err := matrix.ColSums(sym)
	require.NoError(t, err)
	assert.Equal(t, rs, cs)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	A := MustDenseFrom(t, [][]float64{{1, 2}, {3, 4}})
	y, err := matrix.MatVec(A, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1}, y)

	ys, err := matrix.MatVec(hide{A}, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, y, ys)

	_, err = matrix.MatVec(A, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(A, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeRowSums_RowsSumToOne(t *testing.T) {
	t.Parallel()

	A := MustDenseFrom(t, asymmetric3())
	W, sums, err := matrix.NormalizeRowSums(A)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 2}, sums)

	Ws, _, err := matrix.NormalizeRowSums(hide{A})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		var s float64
		for j := 0; j < 3; j++ {
			v := MustAt(t, W, i, j)
			assert.Equal(t, v, MustAt(t, Ws, i, j), "fast and fallback paths agree at (%d,%d)", i, j)
			s += v
		}
		assert.InDelta(t, 1.0, s, 1e-15, "row %d", i)
	}
	assert.Equal(t, 0.75, MustAt(t, W, 1, 0))

	// Input untouched.
	assert.Equal(t, 3.0, MustAt(t, A, 1, 0))
}

func TestNormalizeRowSums_ZeroRowPolicy(t *testing.T) {
	t.Parallel()

	A := MustDenseFrom(t, [][]float64{{0, 1}, {0, 0}})

	_, _, err := matrix.NormalizeRowSums(A)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
	_, _, err = matrix.NormalizeRowSums(hide{A})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	W, sums, err := matrix.NormalizeRowSums(A, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, sums)
	assert.True(t, math.IsNaN(MustAt(t, W, 1, 0)))
	assert.True(t, math.IsNaN(MustAt(t, W, 1, 1)))
	assert.Equal(t, 1.0, MustAt(t, W, 0, 1))
}

func TestNormalizeRowSums_Nil(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.NormalizeRowSums(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
