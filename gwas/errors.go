// SPDX-License-Identifier: MIT
// Package gwas: sentinel error set (unified, consistent).

package gwas

import "errors"

var (
	// ErrNilDataset indicates a nil dataset was passed to LinearRegression.
	ErrNilDataset = errors.New("gwas: nil dataset")

	// ErrNoCovariates indicates an empty covariate list combined with
	// WithIntercept(false): a regression with zero core predictors is
	// meaningless, and the result statistics would be invalid anyway.
	ErrNoCovariates = errors.New("gwas: at least one covariate is required when the intercept is disabled")

	// ErrSampleMismatch indicates that a covariate or trait variable does
	// not have one value per sample of the dosage matrix.
	ErrSampleMismatch = errors.New("gwas: variable length does not match dosage sample count")
)
