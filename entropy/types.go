// SPDX-License-Identifier: MIT

package entropy

import "github.com/katalvlaran/graphinfo/matrix"

// Report carries both measures together with the intermediate values they
// were derived from. All slices have length N and are owned by the caller.
type Report struct {
	// Entropy is the normalized graph entropy (1/(N·ln(N-1))) · Σ_j ln(ColSums[j]).
	Entropy float64

	// Fisher is the normalized graph Fisher information (1/N) · Σ_i NodeInformation[i].
	Fisher float64

	// ColSums[j] = Σ_i A[i][j]; feeds the entropy term.
	ColSums []float64

	// RowSums[i] = Σ_j A[i][j]; normalizes the random walk.
	RowSums []float64

	// Walk is the row-stochastic matrix A[i][j] / RowSums[i].
	Walk matrix.Matrix

	// NodeInformation is the per-node Fisher contribution.
	NodeInformation []float64

	// Symmetric reports whether A was symmetric within the configured
	// tolerance, in which case ColSums and RowSums agree.
	Symmetric bool
}
