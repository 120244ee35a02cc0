// SPDX-License-Identifier: MIT

package entropy

import (
	"math"

	"github.com/katalvlaran/graphinfo/matrix"
)

const (
	// DefaultStrict turns degenerate inputs into explicit errors.
	DefaultStrict = true

	// DefaultSymmetryTolerance is the |A[i,j]-A[j,i]| bound under which
	// Report.Symmetric is set.
	DefaultSymmetryTolerance = matrix.DefaultEpsilon
)

const panicSymmetryTolerance = "entropy: WithSymmetryTolerance: tol must be finite, non-negative"

// Option configures a computation.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it
// through the WithX setters.
type Options struct {
	strict      bool
	symmetryTol float64
}

// WithStrict enables precondition checks (the default):
// finite and non-negative entries, N ≥ 3, finite non-zero row and column sums.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithNaNPropagation disables every check except the square-shape check.
// Degenerate inputs then flow through IEEE-754 arithmetic and come back as
// NaN or ±Inf, as the bare formula would. Sums are sequential, so values match
// other implementations of the formula within rounding.
func WithNaNPropagation() Option {
	return func(o *Options) { o.strict = false }
}

// WithSymmetryTolerance sets the tolerance used for Report.Symmetric.
// Panics if tol is negative, NaN or Inf (programmer error).
func WithSymmetryTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicSymmetryTolerance)
	}

	return func(o *Options) { o.symmetryTol = tol }
}

// gatherOptions applies setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		strict:      DefaultStrict,
		symmetryTol: DefaultSymmetryTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// matrixOptions maps the policy onto the matrix package: compatible mode
// must be able to store NaN/Inf in the random-walk matrix.
func (o Options) matrixOptions() []matrix.Option {
	if o.strict {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}

	return []matrix.Option{matrix.WithNoValidateNaNInf()}
}
