// SPDX-License-Identifier: MIT

package gwas

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gwalin/dataset"
	"github.com/katalvlaran/gwalin/linreg"
)

// Output variable names and dimension labels of the result dataset.
const (
	VarBeta   = "variant_beta"
	VarTValue = "variant_t_value"
	VarPValue = "variant_p_value"

	DimVariants = "variants"
	DimOutcomes = "outcomes"
)

// LinearRegression tests every variant in the dosage matrix for association
// with the named continuous trait, controlling for the named covariates.
//
// Variable expectations:
//   - dosage: rank-2, shape (variants, samples) — numeric dosages, one row
//     per variant. Transposed internally so variants become loop covariates.
//   - covariates: each rank-1 of length samples, or rank-2 (samples, k);
//     columns are stacked left to right in the order given.
//   - trait: rank-1 of length samples, or rank-2 (samples, outcomes).
//
// Unless disabled via WithIntercept(false), a column of ones is prepended to
// the covariates. An empty covariate list without an intercept is rejected
// with ErrNoCovariates.
//
// The result is a fresh dataset with three rank-2 variables — VarBeta,
// VarTValue, VarPValue — of shape (variants, outcomes) along the dims
// (DimVariants, DimOutcomes). Effect statistics are reported for variants
// only; covariate effects are projected out and cannot be recovered.
func LinearRegression(ds *dataset.Dataset, covariates []string, dosage, trait string, opts ...Option) (*dataset.Dataset, error) {
	opt := gatherOptions(opts...)

	if ds == nil {
		return nil, fmt.Errorf("LinearRegression: %w", ErrNilDataset)
	}
	if len(covariates) == 0 && !opt.intercept {
		return nil, fmt.Errorf("LinearRegression: %w", ErrNoCovariates)
	}

	xl, nSamples, err := loopCovariates(ds, dosage)
	if err != nil {
		return nil, fmt.Errorf("LinearRegression: %w", err)
	}
	xc, err := coreCovariates(ds, covariates, nSamples, opt.intercept)
	if err != nil {
		return nil, fmt.Errorf("LinearRegression: %w", err)
	}
	y, err := outcome(ds, trait, nSamples)
	if err != nil {
		return nil, fmt.Errorf("LinearRegression: %w", err)
	}

	res, err := linreg.Regress(xl, xc, y, opt.regress...)
	if err != nil {
		return nil, fmt.Errorf("LinearRegression: %w", err)
	}

	return packResult(res)
}

// loopCovariates extracts the dosage matrix and transposes it so each
// variant becomes one loop-covariate column: (variants, samples) →
// (samples, variants). Returns the matrix and the sample count.
func loopCovariates(ds *dataset.Dataset, dosage string) (*mat.Dense, int, error) {
	v, err := ds.Get(dosage)
	if err != nil {
		return nil, 0, err
	}
	if v.Rank() != 2 {
		return nil, 0, fmt.Errorf("dosage %q must be (variants, samples): %w", dosage, dataset.ErrBadRank)
	}
	shape := v.Shape()

	xl := mat.DenseCopyOf(v.Matrix().T())

	return xl, shape[1], nil
}

// coreCovariates stacks the named covariate columns into (samples, P),
// prepending a ones column when addIntercept is set.
func coreCovariates(ds *dataset.Dataset, names []string, nSamples int, addIntercept bool) (*mat.Dense, error) {
	cols := make([]*mat.Dense, 0, len(names)+1)
	pTotal := 0

	if addIntercept {
		ones := make([]float64, nSamples)
		for i := range ones {
			ones[i] = 1
		}
		cols = append(cols, mat.NewDense(nSamples, 1, ones))
		pTotal++
	}

	for _, name := range names {
		v, err := ds.Get(name)
		if err != nil {
			return nil, err
		}
		m := v.Matrix()
		r, c := m.Dims()
		if r != nSamples {
			return nil, fmt.Errorf("covariate %q has %d values for %d samples: %w", name, r, nSamples, ErrSampleMismatch)
		}
		cols = append(cols, m)
		pTotal += c
	}

	// Column-wise concatenation into a single design block.
	xc := mat.NewDense(nSamples, pTotal, nil)
	at := 0
	for _, m := range cols {
		_, c := m.Dims()
		xc.Slice(0, nSamples, at, at+c).(*mat.Dense).Copy(m)
		at += c
	}

	return xc, nil
}

// outcome extracts the trait as (samples, outcomes); rank-1 traits become a
// single outcome column.
func outcome(ds *dataset.Dataset, trait string, nSamples int) (*mat.Dense, error) {
	v, err := ds.Get(trait)
	if err != nil {
		return nil, err
	}
	m := v.Matrix()
	r, _ := m.Dims()
	if r != nSamples {
		return nil, fmt.Errorf("trait %q has %d values for %d samples: %w", trait, r, nSamples, ErrSampleMismatch)
	}

	return m, nil
}

// packResult relabels the three statistic matrices as named variables along
// (DimVariants, DimOutcomes).
func packResult(res *linreg.Result) (*dataset.Dataset, error) {
	n, o := res.Dims()
	dims := []string{DimVariants, DimOutcomes}
	shape := []int{n, o}

	out := dataset.New()
	for _, item := range []struct {
		name string
		m    *mat.Dense
	}{
		{VarBeta, res.Beta},
		{VarTValue, res.TValue},
		{VarPValue, res.PValue},
	} {
		raw := item.m.RawMatrix()
		v, err := dataset.NewVariable(dims, shape, append([]float64(nil), raw.Data...))
		if err != nil {
			return nil, fmt.Errorf("packResult(%s): %w", item.name, err)
		}
		if err := out.Add(item.name, v); err != nil {
			return nil, fmt.Errorf("packResult(%s): %w", item.name, err)
		}
	}

	return out, nil
}
