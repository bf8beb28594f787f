// SPDX-License-Identifier: MIT

package simulate

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/gwalin/dataset"
)

// Config holds the parameters for synthetic cohort generation.
// All randomness flows from Seed, so equal configs yield equal cohorts.
type Config struct {
	Variants   int // number of simulated variants (rows of the dosage matrix)
	Samples    int // number of individuals
	Covariates int // number of standard-normal core covariates
	Outcomes   int // number of continuous traits

	MinAlleleFreq float64 // lower bound of per-variant alternate allele frequency
	MaxAlleleFreq float64 // upper bound of per-variant alternate allele frequency
	EffectSD      float64 // spread of the true variant/covariate effects; 0 = all null
	NoiseSD       float64 // spread of the residual trait noise
	Seed          uint64  // PCG seed; equal seeds reproduce the cohort exactly
}

// DefaultConfig returns a small, fully reproducible cohort configuration.
func DefaultConfig() Config {
	return Config{
		Variants:      100,
		Samples:       250,
		Covariates:    3,
		Outcomes:      1,
		MinAlleleFreq: 0.05,
		MaxAlleleFreq: 0.5,
		EffectSD:      0.1,
		NoiseSD:       1.0,
		Seed:          42,
	}
}

// Cohort is a complete synthetic association-testing input with its
// generating truth attached.
type Cohort struct {
	Dosage     *mat.Dense // (variants, samples), values in {0, 1, 2}
	Covariates *mat.Dense // (samples, covariates), standard normal
	Trait      *mat.Dense // (samples, outcomes), linear model plus noise

	VariantEffect   *mat.Dense // (variants, outcomes) true per-variant slopes
	CovariateEffect *mat.Dense // (covariates, outcomes) true covariate slopes
}

// NewCohort draws a cohort from cfg. Dosages are two Bernoulli draws per
// (variant, sample) at a per-variant allele frequency; traits follow
// Trait = Dosageᵀ·VariantEffect + Covariates·CovariateEffect + noise.
//
// Panics on non-positive counts or an empty frequency interval (programmer
// error, not data).
func NewCohort(cfg Config) *Cohort {
	if cfg.Variants <= 0 || cfg.Samples <= 0 || cfg.Covariates <= 0 || cfg.Outcomes <= 0 {
		panic("simulate: NewCohort requires positive cohort dimensions")
	}
	if cfg.MinAlleleFreq < 0 || cfg.MaxAlleleFreq > 1 || cfg.MinAlleleFreq > cfg.MaxAlleleFreq {
		panic("simulate: NewCohort requires 0 ≤ MinAlleleFreq ≤ MaxAlleleFreq ≤ 1")
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed<<1|1)
	rng := rand.New(src)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	// Dosage: per-variant allele frequency, two draws per genotype.
	dosage := mat.NewDense(cfg.Variants, cfg.Samples, nil)
	for v := 0; v < cfg.Variants; v++ {
		freq := cfg.MinAlleleFreq + (cfg.MaxAlleleFreq-cfg.MinAlleleFreq)*rng.Float64()
		row := dosage.RawRowView(v)
		for s := range row {
			d := 0.0
			if rng.Float64() < freq {
				d++
			}
			if rng.Float64() < freq {
				d++
			}
			row[s] = d
		}
	}

	covariates := randNormal(cfg.Samples, cfg.Covariates, 1, normal)
	variantEffect := randNormal(cfg.Variants, cfg.Outcomes, cfg.EffectSD, normal)
	covariateEffect := randNormal(cfg.Covariates, cfg.Outcomes, cfg.EffectSD, normal)

	// Trait = G·VariantEffect + Covariates·CovariateEffect + noise,
	// with G the (samples, variants) orientation of the dosage matrix.
	trait := mat.NewDense(cfg.Samples, cfg.Outcomes, nil)
	trait.Mul(dosage.T(), variantEffect)

	var covPart mat.Dense
	covPart.Mul(covariates, covariateEffect)
	trait.Add(trait, &covPart)

	raw := trait.RawMatrix()
	for i := range raw.Data {
		raw.Data[i] += cfg.NoiseSD * normal.Rand()
	}

	return &Cohort{
		Dosage:          dosage,
		Covariates:      covariates,
		Trait:           trait,
		VariantEffect:   variantEffect,
		CovariateEffect: covariateEffect,
	}
}

// randNormal fills an (r, c) matrix with sd-scaled draws from normal.
func randNormal(r, c int, sd float64, normal distuv.Normal) *mat.Dense {
	m := mat.NewDense(r, c, nil)
	raw := m.RawMatrix()
	for i := range raw.Data {
		raw.Data[i] = sd * normal.Rand()
	}

	return m
}

// Variable names used by Cohort.Dataset.
const (
	VarDosage = "call_dosage"
	VarTrait  = "trait"
)

// CovariateName returns the dataset name of the i-th simulated covariate.
func CovariateName(i int) string { return fmt.Sprintf("covariate_%d", i) }

// CovariateNames lists the covariate variable names for cfg.
func (c *Cohort) CovariateNames() []string {
	_, p := c.Covariates.Dims()
	names := make([]string, p)
	for i := range names {
		names[i] = CovariateName(i)
	}

	return names
}

// Dataset packs the cohort as a labeled dataset ready for gwas: the dosage
// as a (variants, samples) rank-2 variable, each covariate as a rank-1
// samples variable, and the trait as rank-1 when there is a single outcome
// or rank-2 (samples, outcomes) otherwise.
func (c *Cohort) Dataset() (*dataset.Dataset, error) {
	nVariants, nSamples := c.Dosage.Dims()
	_, nOutcomes := c.Trait.Dims()

	ds := dataset.New()

	dv, err := dataset.NewVariable([]string{"variants", "samples"}, []int{nVariants, nSamples}, denseData(c.Dosage))
	if err != nil {
		return nil, fmt.Errorf("Dataset(%s): %w", VarDosage, err)
	}
	if err = ds.Add(VarDosage, dv); err != nil {
		return nil, fmt.Errorf("Dataset(%s): %w", VarDosage, err)
	}

	for i, name := range c.CovariateNames() {
		col := make([]float64, nSamples)
		mat.Col(col, i, c.Covariates)
		cv, errV := dataset.NewVariable([]string{"samples"}, []int{nSamples}, col)
		if errV != nil {
			return nil, fmt.Errorf("Dataset(%s): %w", name, errV)
		}
		if err = ds.Add(name, cv); err != nil {
			return nil, fmt.Errorf("Dataset(%s): %w", name, err)
		}
	}

	var tv *dataset.Variable
	if nOutcomes == 1 {
		tv, err = dataset.NewVariable([]string{"samples"}, []int{nSamples}, denseData(c.Trait))
	} else {
		tv, err = dataset.NewVariable([]string{"samples", "outcomes"}, []int{nSamples, nOutcomes}, denseData(c.Trait))
	}
	if err != nil {
		return nil, fmt.Errorf("Dataset(%s): %w", VarTrait, err)
	}
	if err = ds.Add(VarTrait, tv); err != nil {
		return nil, fmt.Errorf("Dataset(%s): %w", VarTrait, err)
	}

	return ds, nil
}

// denseData copies the backing data of a stride-contiguous Dense.
func denseData(m *mat.Dense) []float64 {
	raw := m.RawMatrix()

	return append([]float64(nil), raw.Data...)
}
