// Package linreg computes batched ordinary-least-squares association
// statistics: one slope, t-statistic and two-sided p-value for every
// (loop covariate, outcome) pair, with a shared set of core covariates
// controlled for — in a single vectorized pass.
//
// 🚀 What does it do?
//
//	Given XL (M×N loop covariates, e.g. variant dosages), XC (M×P core
//	covariates, e.g. age, sex, ancestry components) and Y (M×O outcomes),
//	Regress residualizes XL and Y against XC once with a QR-backed
//	least-squares solve, then estimates all N·O statistics from the
//	residuals. The Frisch–Waugh–Lovell property guarantees each slope
//	matches the corresponding coefficient of the full multi-covariate
//	regression.
//
// ✨ Key properties:
//   - one projection, reused for XL and Y — never a per-covariate solve
//   - QR least squares, never explicit inverses or normal equations
//   - per-pair independence: results are identical whether covariate sets
//     are regressed jointly or separately
//   - degenerate covariates poison only their own cells (NaN for an exact
//     zero residual, unstable values for near collinearity), never the batch
//   - tiled, worker-parallel estimation along the loop and outcome axes;
//     the observation axis is never partitioned
//
// ⚙️ Usage:
//
//	import (
//	  "gonum.org/v1/gonum/mat"
//
//	  "github.com/katalvlaran/gwalin/linreg"
//	)
//
//	res, err := linreg.Regress(xl, xc, y,
//	  linreg.WithTileSize(512, 64),
//	  linreg.WithWorkers(8),
//	)
//	if err != nil {
//	  // ErrNilMatrix, ErrEmptyMatrix, ErrObservationMismatch,
//	  // or ErrInsufficientObservations
//	}
//	beta := res.Beta.At(n, o) // slope of outcome o on loop covariate n
//
// Statistics are only valid when XC contains an intercept column; the
// residual-mean-zero assumption of the variance estimate is not verified.
//
// Performance:
//
//   - Time:   O(M·P²) + O(M·P·(N+O)) for projection, O(M·N·O) for estimation
//   - Memory: O(M·(N+O)) residuals + O(N·O) results; no 3-D intermediates
package linreg
