// SPDX-License-Identifier: MIT

package entropy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/graphinfo/matrix"
)

// Operation tags for error wrapping.
const (
	opCompute           = "entropy.Compute"
	opComputeRows       = "entropy.ComputeRows"
	opAnalyze           = "entropy.Analyze"
	opGraphEntropy      = "entropy.GraphEntropy"
	opFisherInformation = "entropy.FisherInformation"
	opRandomWalk        = "entropy.RandomWalk"
	opNodeInformation   = "entropy.NodeInformation"
)

// minNodes is the smallest N for which ln(N-1) > 0.
const minNodes = 3

// Compute returns the normalized graph entropy and the normalized graph
// Fisher information of the adjacency matrix A.
//
// Algorithm (N = Rows(A)):
//  1. colsum[j] = Σ_i A[i][j];  entropy = (1/(N·ln(N-1))) · Σ_j ln(colsum[j]).
//  2. walk[i][j] = A[i][j] / Σ_j A[i][j].
//  3. node[i] = ½ · Σ_{j=0..N-2, j≠i} (√walk[i][j+1] − √walk[i][j])².
//  4. fisher = Σ_i node[i] / N.
//
// Step 3 compares consecutive columns (j, j+1) only, and drops the pair whose
// left index equals the node index i. This is the exact published formula;
// it is not an all-pairs metric and it does not skip the diagonal entry itself.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNonSquare (all modes).
//   - strict mode: matrix.ErrNaNInf, ErrNegativeWeight, ErrTooFewNodes, then
//     ErrSumOverflow or ErrZeroColSum for column sums, then ErrSumOverflow or
//     ErrZeroRowSum for row sums, in that order of precedence.
//
// Complexity: Time O(N²), Space O(N²) for the walk matrix.
func Compute(A matrix.Matrix, opts ...Option) (entropy, fisher float64, err error) {
	r, err := analyze(A, gatherOptions(opts...), false)
	if err != nil {
		return 0, 0, entropyErrorf(opCompute, err)
	}

	return r.Entropy, r.Fisher, nil
}

// ComputeRows is Compute over a row-major slice of slices.
// Ragged rows fail with matrix.ErrDimensionMismatch; an empty slice with
// matrix.ErrInvalidDimensions.
func ComputeRows(rows [][]float64, opts ...Option) (entropy, fisher float64, err error) {
	o := gatherOptions(opts...)
	A, err := matrix.NewDenseFrom(rows, o.matrixOptions()...)
	if err != nil {
		return 0, 0, entropyErrorf(opComputeRows, err)
	}
	r, err := analyze(A, o, false)
	if err != nil {
		return 0, 0, entropyErrorf(opComputeRows, err)
	}

	return r.Entropy, r.Fisher, nil
}

// Analyze runs the same computation as Compute and returns every derived
// value: column and row sums, the random-walk matrix, the per-node vector and
// whether A is symmetric.
func Analyze(A matrix.Matrix, opts ...Option) (*Report, error) {
	r, err := analyze(A, gatherOptions(opts...), true)
	if err != nil {
		return nil, entropyErrorf(opAnalyze, err)
	}

	return r, nil
}

// GraphEntropy returns only the entropy term. Strict mode requires N ≥ 3 and
// finite non-zero column sums; row sums are not inspected.
func GraphEntropy(A matrix.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := checkInput(A, o); err != nil {
		return 0, entropyErrorf(opGraphEntropy, err)
	}
	h, _, err := entropyTerm(A, o)
	if err != nil {
		return 0, entropyErrorf(opGraphEntropy, err)
	}

	return h, nil
}

// FisherInformation returns only the Fisher term. Strict mode requires
// finite non-zero row sums; any N ≥ 1 is accepted.
func FisherInformation(A matrix.Matrix, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if err := checkInput(A, o); err != nil {
		return 0, entropyErrorf(opFisherInformation, err)
	}
	walk, _, err := randomWalk(A, o)
	if err != nil {
		return 0, entropyErrorf(opFisherInformation, err)
	}
	info, err := nodeInformation(walk)
	if err != nil {
		return 0, entropyErrorf(opFisherInformation, err)
	}

	return fisherTerm(info), nil
}

// RandomWalk returns the row-normalized transition matrix of A.
func RandomWalk(A matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if err := checkInput(A, o); err != nil {
		return nil, entropyErrorf(opRandomWalk, err)
	}
	walk, _, err := randomWalk(A, o)
	if err != nil {
		return nil, entropyErrorf(opRandomWalk, err)
	}

	return walk, nil
}

// NodeInformation returns the per-node Fisher contributions of a random-walk
// matrix (as produced by RandomWalk). The walk is used as-is; values are not
// re-normalized or validated beyond shape.
func NodeInformation(walk matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(walk); err != nil {
		return nil, entropyErrorf(opNodeInformation, err)
	}
	info, err := nodeInformation(walk)
	if err != nil {
		return nil, entropyErrorf(opNodeInformation, err)
	}

	return info, nil
}

// analyze is the single pipeline behind Compute, ComputeRows and Analyze.
// withSymmetry gates the O(N²) symmetry scan that only Report exposes.
func analyze(A matrix.Matrix, o Options, withSymmetry bool) (*Report, error) {
	if err := checkInput(A, o); err != nil {
		return nil, err
	}

	h, colSums, err := entropyTerm(A, o)
	if err != nil {
		return nil, err
	}
	walk, rowSums, err := randomWalk(A, o)
	if err != nil {
		return nil, err
	}
	info, err := nodeInformation(walk)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Entropy:         h,
		Fisher:          fisherTerm(info),
		ColSums:         colSums,
		RowSums:         rowSums,
		Walk:            walk,
		NodeInformation: info,
	}
	if withSymmetry {
		r.Symmetric = matrix.ValidateSymmetric(A, o.symmetryTol) == nil
	}

	return r, nil
}

// checkInput validates shape (always) and, in strict mode, entry values.
func checkInput(A matrix.Matrix, o Options) error {
	if err := matrix.ValidateSquareNonNil(A); err != nil {
		return err
	}
	if !o.strict {
		return nil
	}
	if err := matrix.ValidateFinite(A); err != nil {
		return err
	}
	if err := matrix.ValidateNonNegative(A); err != nil {
		return fmt.Errorf("%w: %w", ErrNegativeWeight, err)
	}

	return nil
}

// entropyTerm computes (1/(N·ln(N-1))) · Σ_j ln(colsum[j]) and returns the
// column sums it used.
func entropyTerm(A matrix.Matrix, o Options) (float64, []float64, error) {
	n := A.Rows()
	if o.strict && n < minNodes {
		return 0, nil, fmt.Errorf("N=%d: %w", n, ErrTooFewNodes)
	}
	colSums, err := matrix.ColSums(A)
	if err != nil {
		return 0, nil, err
	}
	if o.strict {
		if err = checkSums("column", colSums, ErrZeroColSum); err != nil {
			return 0, nil, err
		}
	}

	var logSum float64
	for _, s := range colSums {
		logSum += math.Log(s)
	}
	// N=2 gives 1/0 = +Inf here and NaN after the product; N=1 gives -0.
	norm := 1 / (float64(n) * math.Log(float64(n-1)))

	return norm * logSum, colSums, nil
}

// randomWalk row-normalizes A. In strict mode overflowed and zero row sums
// are reported before any division happens.
func randomWalk(A matrix.Matrix, o Options) (matrix.Matrix, []float64, error) {
	if o.strict {
		rowSums, err := matrix.RowSums(A)
		if err != nil {
			return nil, nil, err
		}
		if err = checkSums("row", rowSums, ErrZeroRowSum); err != nil {
			return nil, nil, err
		}
	}

	return matrix.NormalizeRowSums(A, o.matrixOptions()...)
}

// checkSums rejects sums that overflowed to +Inf, then zero sums, reporting
// the first offending index.
func checkSums(axis string, sums []float64, errZero error) error {
	for k, s := range sums {
		if math.IsInf(s, 0) {
			return fmt.Errorf("%s %d: %w", axis, k, ErrSumOverflow)
		}
	}
	for k, s := range sums {
		if s == 0 {
			return fmt.Errorf("%s %d: %w", axis, k, errZero)
		}
	}

	return nil
}

// nodeInformation sweeps consecutive column pairs (j, j+1), j = 0..N-2, of
// each walk row and zeroes the pair whose index j equals the row index i.
func nodeInformation(walk matrix.Matrix) ([]float64, error) {
	n := walk.Rows()
	info := make([]float64, n)

	var i, j int
	var left, right, d, sum float64
	var err error
	for i = 0; i < n; i++ {
		sum = 0
		for j = 0; j < n-1; j++ {
			if i == j {
				continue
			}
			if left, err = walk.At(i, j); err != nil {
				return nil, err
			}
			if right, err = walk.At(i, j+1); err != nil {
				return nil, err
			}
			d = math.Sqrt(right) - math.Sqrt(left)
			sum += d * d
		}
		info[i] = 0.5 * sum
	}

	return info, nil
}

// fisherTerm averages the per-node contributions.
func fisherTerm(info []float64) float64 {
	var sum float64
	for _, v := range info {
		sum += v
	}

	return sum / float64(len(info))
}
