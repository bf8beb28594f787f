// SPDX-License-Identifier: MIT

package linreg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// project removes the linear effect of the core covariates xc from m by
// orthogonal projection: it solves xc·coef ≈ m in the least-squares sense
// and returns m - xc·coef.
//
// Contract: xc is (M, P), m is (M, K); the result is (M, K) and orthogonal
// to every column of xc to the precision of the solver. When xc contains an
// intercept column the residual columns sum to zero — a property the
// downstream variance estimate assumes but does not verify.
//
// The solve is QR-backed (gonum picks QR for overdetermined systems); the
// normal equations xcᵀxc are never formed. A rank-deficient xc is not
// rejected: gonum reports poor conditioning via mat.Condition while still
// producing a solution, and we deliberately let those numerically unstable
// residuals flow through, matching the unchecked-precondition contract of
// the caller. Only an outright refusal by the solver becomes an error.
//
// Complexity: O(M·P²) for the factorization plus O(M·P·K) to apply it.
// The observation axis must never be partitioned across this call; the
// factorization needs every row at once.
func project(xc, m *mat.Dense) (*mat.Dense, error) {
	var coef mat.Dense
	if err := coef.Solve(xc, m); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
		}
		// Near-singular core covariates: solution exists but is poorly
		// conditioned. Propagate the unstable residuals, not an error.
	}

	// residual = m - xc·coef
	var fit mat.Dense
	fit.Mul(xc, &coef)

	var res mat.Dense
	res.Sub(m, &fit)

	return &res, nil
}
