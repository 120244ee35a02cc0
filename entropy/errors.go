// SPDX-License-Identifier: MIT

package entropy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphinfo/matrix"
)

// ErrNonSquare is returned in every mode when the adjacency matrix is not N×N.
// It aliases matrix.ErrNonSquare so either sentinel matches with errors.Is.
var ErrNonSquare = matrix.ErrNonSquare

// Strict-mode preconditions. WithNaNPropagation disables all of them.
var (
	// ErrTooFewNodes indicates N < 3: the entropy normalizer N·ln(N-1) is zero or undefined.
	ErrTooFewNodes = errors.New("entropy: graph needs at least 3 nodes")

	// ErrZeroColSum indicates a node with zero column sum; ln(0) is -Inf.
	ErrZeroColSum = errors.New("entropy: zero column sum")

	// ErrZeroRowSum indicates a node with zero row sum; its random-walk row would be 0/0.
	ErrZeroRowSum = errors.New("entropy: zero row sum")

	// ErrSumOverflow indicates finite entries whose row or column sum exceeds
	// the float64 range; the walk row would collapse to zeros (x/Inf).
	ErrSumOverflow = errors.New("entropy: row or column sum overflows float64")

	// ErrNegativeWeight indicates a negative adjacency entry.
	ErrNegativeWeight = errors.New("entropy: negative edge weight")
)

// entropyErrorf wraps err as "<tag>: <err>"; the sentinel stays matchable.
func entropyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
