// SPDX-License-Identifier: MIT

package entropy_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphinfo/matrix"
)

// tol is the absolute tolerance for closed-form fixtures.
const tol = 1e-12

// hide masks *matrix.Dense so kernels run their At/Set fallback path.
type hide struct{ matrix.Matrix }

// dense builds a *matrix.Dense or fails the test.
func dense(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, opts...)
	require.NoError(t, err)

	return m
}

// complete3 is K3, unweighted, no loops.
func complete3() [][]float64 {
	return [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
}

// asymmetric3 is a weighted digraph: row sums [3,4,2], column sums [4,2,3].
func asymmetric3() [][]float64 {
	return [][]float64{
		{0, 1, 2},
		{3, 0, 1},
		{1, 1, 0},
	}
}

// randomGraph returns an n×n matrix with a zero diagonal and weights in
// (0.1, 1.1], so every row and column sum is positive.
func randomGraph(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 0.1 + rng.Float64()
			}
		}
	}

	return rows
}

// scaled returns c·rows as a fresh slice.
func scaled(rows [][]float64, c float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = make([]float64, len(r))
		for j, v := range r {
			out[i][j] = c * v
		}
	}

	return out
}

// reference evaluates both measures straight from the formula on plain
// slices, with no shared code path. Used as an oracle.
func reference(rows [][]float64) (h, f float64) {
	n := len(rows)
	var logSum float64
	for j := 0; j < n; j++ {
		var c float64
		for i := 0; i < n; i++ {
			c += rows[i][j]
		}
		logSum += math.Log(c)
	}
	h = (1 / (float64(n) * math.Log(float64(n-1)))) * logSum

	var total float64
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += rows[i][j]
		}
		var acc float64
		for j := 0; j < n-1; j++ {
			if i == j {
				continue
			}
			d := math.Sqrt(rows[i][j+1]/s) - math.Sqrt(rows[i][j]/s)
			acc += d * d
		}
		total += 0.5 * acc
	}

	return h, total / float64(n)
}
