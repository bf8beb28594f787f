// SPDX-License-Identifier: MIT

package linreg

import (
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// estimate runs the batched statistic pass over the residualized matrices.
//
// Contract: xlp is (M, N) and yp is (M, O), both already orthogonal to the
// core covariates; dof ≥ 1. For every (loop covariate, outcome) pair it
// produces a slope, a t-statistic and a two-sided p-value — all (N, O).
//
// Because both inputs are residuals, the per-pair simple-regression slope
// (XLPᵀ·YP)/XLPS reproduces the coefficient of the full multi-covariate
// regression exactly (Frisch–Waugh–Lovell), which is what lets one matrix
// product replace N separate solves.
//
// Pairs are mutually independent: the only shared state is the read-only
// projected matrices and the dof scalar, so tiles along the loop axis run
// concurrently with no synchronization beyond the final gather.
//
// Complexity: O(M·N·O) time, O(N·O) space for the results; the per-pair
// residual block is streamed in tiles and never materialized as a 3-D array.
func estimate(xlp, yp *mat.Dense, dof int, opt options) *Result {
	mObs, nLoop := xlp.Dims()
	_, nOut := yp.Dims()

	// XLPS[n] = Σ_m XLP[m,n]² — per-loop-covariate residual sum of squares.
	rawX := xlp.RawMatrix()
	xlps := make([]float64, nLoop)
	var i, n int
	for i = 0; i < mObs; i++ {
		row := rawX.Data[i*rawX.Stride : i*rawX.Stride+nLoop]
		for n = 0; n < nLoop; n++ {
			xlps[n] += row[n] * row[n]
		}
	}

	// Beta = (XLPᵀ · YP) / XLPS, broadcast across outcomes. An exactly-zero
	// XLPS[n] (an all-zero loop covariate: projecting the zero vector is
	// exact in floating point) divides through to NaN for row n only. A
	// merely collinear column keeps a rounding-level residual and produces
	// numerically unstable finite values instead. Either way the degeneracy
	// stays in its own row and is propagated, never raised.
	beta := mat.NewDense(nLoop, nOut, nil)
	beta.Mul(xlp.T(), yp)
	var o int
	for n = 0; n < nLoop; n++ {
		s := xlps[n]
		brow := beta.RawRowView(n)
		for o = 0; o < nOut; o++ {
			brow[o] /= s
		}
	}

	tval := mat.NewDense(nLoop, nOut, nil)
	pval := mat.NewDense(nLoop, nOut, nil)

	// Tiles along the loop axis own disjoint row ranges of Beta/T/P; workers
	// share only read-only inputs, so no locking is needed anywhere.
	g := new(errgroup.Group)
	g.SetLimit(opt.workers)
	for n0 := 0; n0 < nLoop; n0 += opt.loopTile {
		lo, hi := n0, min(n0+opt.loopTile, nLoop)
		g.Go(func() error {
			estimateTile(xlp, yp, beta, tval, pval, xlps, dof, lo, hi, opt.outcomeTile)

			return nil
		})
	}
	_ = g.Wait() // tile workers are pure arithmetic and never fail

	return &Result{Beta: beta, TValue: tval, PValue: pval, Dof: dof}
}

// estimateTile computes RSS, t and p for loop covariates [n0, n1).
// The residual Y[m,o] - XLP[m,n]·B[n,o] is streamed one loop covariate at a
// time, blocked along the outcome axis so the working set (one beta row and
// one RSS accumulator row) stays cache-resident for wide outcome matrices.
func estimateTile(xlp, yp, beta, tval, pval *mat.Dense, xlps []float64, dof, n0, n1, outTile int) {
	mObs, _ := xlp.Dims()
	_, nOut := yp.Dims()
	rawX := xlp.RawMatrix()
	rawY := yp.RawMatrix()

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	rss := make([]float64, nOut)

	var i, o, o0, o1 int
	var xv, r, t float64
	for n := n0; n < n1; n++ {
		for o = 0; o < nOut; o++ {
			rss[o] = 0
		}
		brow := beta.RawRowView(n)

		// RSS[n,o] = Σ_m (YP[m,o] - XLP[m,n]·B[n,o])², in outcome blocks.
		for o0 = 0; o0 < nOut; o0 += outTile {
			o1 = min(o0+outTile, nOut)
			for i = 0; i < mObs; i++ {
				xv = rawX.Data[i*rawX.Stride+n]
				yrow := rawY.Data[i*rawY.Stride : i*rawY.Stride+nOut]
				for o = o0; o < o1; o++ {
					r = yrow[o] - xv*brow[o]
					rss[o] += r * r
				}
			}
		}

		// T = B / √(RSS / dof / XLPS); P = 2·sf(|T|) under Student's t.
		scale := float64(dof) * xlps[n]
		trow := tval.RawRowView(n)
		prow := pval.RawRowView(n)
		for o = 0; o < nOut; o++ {
			t = brow[o] / math.Sqrt(rss[o]/scale)
			trow[o] = t
			prow[o] = pValue(dist, t)
		}
	}
}

// pValue maps a t-statistic to its two-sided p-value. NaN statistics (from
// degenerate loop covariates) stay NaN; ±Inf maps to exactly 0; t == 0 maps
// to exactly 1 (Survival(0) is one half by symmetry).
func pValue(dist distuv.StudentsT, t float64) float64 {
	if math.IsNaN(t) {
		return math.NaN()
	}

	return 2 * dist.Survival(math.Abs(t))
}
