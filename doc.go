// Package graphinfo computes information-theoretic measures of graphs from
// their adjacency matrices: normalized graph entropy and normalized graph
// Fisher information.
//
// 🚀 What is graphinfo?
//
//	A small, deterministic, pure-Go library:
//		• matrix/  — dense row-major storage, validators, row/column sums,
//		             row-stochastic normalization, NaN/Inf policy
//		• entropy/ — the two graph measures, strict and compatible modes
//
// ✨ Why choose graphinfo?
//
//   - Closed form: one O(N²) pass, no iteration, no hidden state
//   - Explicit failures: degenerate graphs return sentinel errors by default
//   - Unguarded mode: WithNaNPropagation lets degenerate inputs yield NaN/±Inf like the bare formula
//
// Quick example:
//
//	    A───B
//	     \ /
//	      C
//
//	h, f, _ := entropy.ComputeRows([][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
//	// h = 1, f = 1/6
//
//	go get github.com/katalvlaran/graphinfo
package graphinfo
