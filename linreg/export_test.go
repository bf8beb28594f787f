// SPDX-License-Identifier: MIT

package linreg

import "gonum.org/v1/gonum/mat"

// Test-bridge for private kernels: exposes the projector and the estimator
// (with default options) to white-box tests without widening the prod API.

var ExportProject = project

// ExportEstimate runs the batched estimator with default options.
func ExportEstimate(xlp, yp *mat.Dense, dof int) *Result {
	return estimate(xlp, yp, dof, gatherOptions())
}
