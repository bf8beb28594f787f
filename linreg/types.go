// Package linreg defines result types for batched OLS association testing.
package linreg

import "gonum.org/v1/gonum/mat"

// Result bundles the three per-pair statistic matrices produced by Regress.
//
// For XL with N loop covariates and Y with O outcomes, every field has shape
// (N, O): one scalar per (loop covariate, outcome) pair, each computed
// independently of every other pair.
//
//   - Beta   — estimated slope of each loop covariate on each outcome after
//     the core covariates' effect has been projected out.
//   - TValue — Beta normalized by its estimated standard error.
//   - PValue — two-sided significance of TValue under Student's t with
//     Dof degrees of freedom; always in [0, 1] when TValue is finite.
//
// Degenerate loop covariates poison only their own cells: an exactly-zero
// residual after projection yields NaN entries, a nearly collinear column
// yields numerically unstable finite values. Neighbouring cells are
// unaffected either way.
type Result struct {
	Beta   *mat.Dense
	TValue *mat.Dense
	PValue *mat.Dense

	// Dof is the shared degrees of freedom M - P - 1 used to calibrate the
	// t distribution. It is a property of the global shapes, not of any
	// individual pair.
	Dof int
}

// Dims returns the common (N, O) shape of the statistic matrices.
func (r *Result) Dims() (n, o int) {
	return r.Beta.Dims()
}
