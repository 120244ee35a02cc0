// Package entropy computes the normalized graph entropy and the normalized
// graph Fisher information of a weighted graph given as an adjacency matrix.
//
// 🚀 What is measured?
//
//	Entropy  H = (1 / (N·ln(N-1))) · Σ_j ln(colsum_j)
//	Fisher   F = (1 / N) · Σ_i ½ · Σ_{j≠i} (√P[i][j+1] − √P[i][j])²
//
//	where P is the random-walk matrix, each row of A divided by its row sum,
//	and the inner sum runs over consecutive column pairs j = 0..N-2.
//	Column sums feed the entropy; row sums feed the walk. For a symmetric
//	matrix both coincide.
//
// ✨ Key features:
//   - one closed-form pass, O(N²) time and memory, no hidden state
//   - strict mode (default): degenerate inputs are explicit errors
//   - compatible mode (WithNaNPropagation): degenerate inputs come back as NaN/±Inf
//   - Analyze exposes sums, walk matrix and per-node contributions
//
// ⚙️ Usage:
//
//	A, _ := matrix.NewDenseFrom([][]float64{
//		{0, 1, 1},
//		{1, 0, 1},
//		{1, 1, 0},
//	})
//	h, f, err := entropy.Compute(A) // h = 1, f = 1/6
//
// Degenerate inputs in strict mode:
//
//	N < 3                 ErrTooFewNodes   (ln(N-1) ≤ 0)
//	zero column sum       ErrZeroColSum    (ln 0)
//	zero row sum          ErrZeroRowSum    (0/0 in the walk)
//	sum beyond float64    ErrSumOverflow   (x/Inf flattens the walk)
//	negative entry        ErrNegativeWeight
//	NaN/Inf entry         matrix.ErrNaNInf
//
// A non-square matrix fails with ErrNonSquare in every mode.
//
// All functions are pure and safe for concurrent use on shared read-only input.
package entropy
