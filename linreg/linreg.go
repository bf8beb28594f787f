// SPDX-License-Identifier: MIT

package linreg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Regress fits, for every column of xl and every column of y, the OLS slope
// of that outcome on that loop covariate with the core covariates xc held
// fixed — without ever forming the N separate regression problems.
//
// Inputs:
//   - xl: (M, N) loop covariates, one independently-tested predictor per column.
//   - xc: (M, P) core covariates shared by every regression; include an
//     intercept column of ones for statistically valid results.
//   - y:  (M, O) continuous outcomes.
//
// Returns a Result with Beta, TValue and PValue, all (N, O), plus the shared
// degrees of freedom dof = M - P - 1.
//
// Structural preconditions fail fast before any numeric work:
//   - ErrNilMatrix / ErrEmptyMatrix — inputs must be two-dimensional with
//     positive extents.
//   - ErrObservationMismatch — all inputs must share the same M, same row order.
//   - ErrInsufficientObservations — dof must be at least 1; the error reports
//     M and P.
//
// Numeric degeneracies never fail the call and stay in their own cells: a
// loop covariate whose projected residual is exactly zero yields NaN
// statistics, a nearly collinear one yields numerically unstable finite
// values.
//
// The projection against xc is computed exactly once per input matrix and
// shared by every pair — the source of the algorithm's efficiency. Per-pair
// work is then embarrassingly parallel; see Option for the tiling knobs.
func Regress(xl, xc, y *mat.Dense, opts ...Option) (*Result, error) {
	opt := gatherOptions(opts...)

	if err := validateInputs(xl, xc, y); err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	mObs, _ := xl.Dims()
	_, pCov := xc.Dims()
	dof, err := validateDOF(mObs, pCov)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	// Residualize both sides against the core covariates. One QR solve per
	// matrix; the observation axis is never partitioned here.
	xlp, err := project(xc, xl)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}
	yp, err := project(xc, y)
	if err != nil {
		return nil, fmt.Errorf("Regress: %w", err)
	}

	return estimate(xlp, yp, dof, opt), nil
}
