// SPDX-License-Identifier: MIT

package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gwalin/simulate"
)

// TestNewCohort_Shapes checks every matrix comes out with the configured extents.
func TestNewCohort_Shapes(t *testing.T) {
	cfg := simulate.Config{
		Variants: 12, Samples: 30, Covariates: 4, Outcomes: 2,
		MinAlleleFreq: 0.1, MaxAlleleFreq: 0.4, EffectSD: 0.2, NoiseSD: 1, Seed: 7,
	}
	c := simulate.NewCohort(cfg)

	r, cc := c.Dosage.Dims()
	assert.Equal(t, []int{12, 30}, []int{r, cc})
	r, cc = c.Covariates.Dims()
	assert.Equal(t, []int{30, 4}, []int{r, cc})
	r, cc = c.Trait.Dims()
	assert.Equal(t, []int{30, 2}, []int{r, cc})
	r, cc = c.VariantEffect.Dims()
	assert.Equal(t, []int{12, 2}, []int{r, cc})
	r, cc = c.CovariateEffect.Dims()
	assert.Equal(t, []int{4, 2}, []int{r, cc})
}

// TestNewCohort_DosageValues: genotypes are two Bernoulli draws, so every
// dosage must be 0, 1 or 2.
func TestNewCohort_DosageValues(t *testing.T) {
	c := simulate.NewCohort(simulate.DefaultConfig())
	raw := c.Dosage.RawMatrix()
	for _, v := range raw.Data {
		assert.Contains(t, []float64{0, 1, 2}, v)
	}
}

// TestNewCohort_Deterministic: equal configs reproduce the cohort exactly.
func TestNewCohort_Deterministic(t *testing.T) {
	cfg := simulate.DefaultConfig()
	a := simulate.NewCohort(cfg)
	b := simulate.NewCohort(cfg)

	assert.True(t, mat.Equal(a.Dosage, b.Dosage))
	assert.True(t, mat.Equal(a.Covariates, b.Covariates))
	assert.True(t, mat.Equal(a.Trait, b.Trait))

	cfg.Seed++
	c := simulate.NewCohort(cfg)
	assert.False(t, mat.Equal(a.Trait, c.Trait), "a different seed must change the draw")
}

// TestNewCohort_PanicsOnNonsense rejects impossible configurations loudly.
func TestNewCohort_PanicsOnNonsense(t *testing.T) {
	cfg := simulate.DefaultConfig()
	cfg.Variants = 0
	assert.Panics(t, func() { simulate.NewCohort(cfg) })

	cfg = simulate.DefaultConfig()
	cfg.MinAlleleFreq = 0.9
	cfg.MaxAlleleFreq = 0.1
	assert.Panics(t, func() { simulate.NewCohort(cfg) })
}

// TestCohort_Dataset: packing exposes the documented names and treats a
// single outcome as a rank-1 trait.
func TestCohort_Dataset(t *testing.T) {
	cfg := simulate.DefaultConfig()
	cfg.Variants = 5
	cfg.Samples = 10
	cfg.Covariates = 2
	c := simulate.NewCohort(cfg)

	ds, err := c.Dataset()
	require.NoError(t, err)

	assert.Equal(t, []string{
		simulate.VarDosage,
		simulate.CovariateName(0),
		simulate.CovariateName(1),
		simulate.VarTrait,
	}, ds.Names())

	dv, err := ds.Get(simulate.VarDosage)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 10}, dv.Shape())
	assert.Equal(t, []string{"variants", "samples"}, dv.Dims())

	tv, err := ds.Get(simulate.VarTrait)
	require.NoError(t, err)
	assert.Equal(t, 1, tv.Rank(), "a single outcome packs as rank-1")
	assert.Equal(t, []int{10}, tv.Shape())

	// Multi-outcome traits pack as rank-2.
	cfg.Outcomes = 3
	ds2, err := simulate.NewCohort(cfg).Dataset()
	require.NoError(t, err)
	tv2, err := ds2.Get(simulate.VarTrait)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 3}, tv2.Shape())
}
