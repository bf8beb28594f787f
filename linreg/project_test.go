// SPDX-License-Identifier: MIT

package linreg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gwalin/linreg"
)

// TestProject_OrthogonalityLaw verifies the projector's core guarantee:
// the residual matrix is orthogonal to every column of the core covariates,
// XCᵀ·residual ≈ 0 within solver precision.
func TestProject_OrthogonalityLaw(t *testing.T) {
	const mObs, pCov, k = 60, 4, 6
	xc := withInterceptCol(randDense(mObs, pCov-1, 71))
	target := randDense(mObs, k, 72)

	res, err := linreg.ExportProject(xc, target)
	require.NoError(t, err)

	var cross mat.Dense
	cross.Mul(xc.T(), res)
	for i := 0; i < pCov; i++ {
		for j := 0; j < k; j++ {
			assert.InDelta(t, 0.0, cross.At(i, j), 1e-8,
				"residual column %d must be orthogonal to covariate %d", j, i)
		}
	}
}

// TestProject_ZeroMeanResiduals: with an intercept column present, residual
// columns must sum to zero — the property the variance estimate assumes.
func TestProject_ZeroMeanResiduals(t *testing.T) {
	const mObs, k = 45, 3
	xc := withInterceptCol(randDense(mObs, 2, 73))
	target := randDense(mObs, k, 74)

	res, err := linreg.ExportProject(xc, target)
	require.NoError(t, err)

	for j := 0; j < k; j++ {
		sum := 0.0
		for i := 0; i < mObs; i++ {
			sum += res.At(i, j)
		}
		assert.InDelta(t, 0.0, sum, 1e-8, "residual column %d must be mean-zero", j)
	}
}

// TestProject_ReproducesMeanSubtraction: against an intercept-only core,
// projection is exactly centering.
func TestProject_ReproducesMeanSubtraction(t *testing.T) {
	x := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	mObs := len(x)
	ones := mat.NewDense(mObs, 1, nil)
	for i := 0; i < mObs; i++ {
		ones.Set(i, 0, 1)
	}

	res, err := linreg.ExportProject(ones, mat.NewDense(mObs, 1, x))
	require.NoError(t, err)

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(mObs)
	for i := 0; i < mObs; i++ {
		assert.InDelta(t, x[i]-mean, res.At(i, 0), 1e-12)
	}
}

// TestEstimate_ZeroSlopeExactUnitP: a loop covariate exactly orthogonal to
// the outcome yields beta = 0, t = 0 and a p-value of exactly 1.
func TestEstimate_ZeroSlopeExactUnitP(t *testing.T) {
	// Pre-residualized by hand: both columns are mean-zero and their inner
	// product is exactly zero in binary floating point.
	xlp := mat.NewDense(4, 1, []float64{-1.5, -0.5, 0.5, 1.5})
	yp := mat.NewDense(4, 1, []float64{0.5, -0.5, -0.5, 0.5})

	res := linreg.ExportEstimate(xlp, yp, 2)

	assert.Equal(t, 0.0, res.Beta.At(0, 0), "orthogonal pair must have zero slope")
	assert.Equal(t, 0.0, res.TValue.At(0, 0))
	assert.Equal(t, 1.0, res.PValue.At(0, 0), "t = 0 must map to p = 1 exactly")
}

// TestEstimate_PerfectFitInfiniteT: an exact linear relation leaves zero RSS,
// so the t-statistic degenerates to +Inf and the p-value to exactly 0.
func TestEstimate_PerfectFitInfiniteT(t *testing.T) {
	xlp := mat.NewDense(4, 1, []float64{-1.5, -0.5, 0.5, 1.5})
	yp := mat.NewDense(4, 1, []float64{-3, -1, 1, 3}) // exactly 2·xlp

	res := linreg.ExportEstimate(xlp, yp, 2)

	assert.Equal(t, 2.0, res.Beta.At(0, 0))
	assert.True(t, math.IsInf(res.TValue.At(0, 0), 1), "zero RSS must yield +Inf t")
	assert.Equal(t, 0.0, res.PValue.At(0, 0))
}
