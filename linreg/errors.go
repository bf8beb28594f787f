// SPDX-License-Identifier: MIT
// Package linreg: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the linreg
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered error conditions; panics
// are reserved for programmer errors in option constructors.

package linreg

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linreg: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned wrapped with an operation
// tag via fmt.Errorf("Op: %w", ErrX) at the facade; callers still match with
// errors.Is.
//
// Numeric degeneracies are deliberately NOT errors: a loop covariate whose
// projected residual is exactly zero surfaces as NaN entries in its own
// (loop covariate, outcome) cells, a nearly collinear one as numerically
// unstable finite values there — never as a failed call.

var (
	// ErrNilMatrix indicates that a nil input matrix was passed to Regress.
	ErrNilMatrix = errors.New("linreg: nil matrix")

	// ErrEmptyMatrix indicates that an input matrix has a zero extent along
	// one of its two dimensions. Inputs must be genuinely two-dimensional.
	ErrEmptyMatrix = errors.New("linreg: matrix must be two-dimensional with positive extents")

	// ErrObservationMismatch indicates that the loop covariates, core
	// covariates and outcome do not share the same observation count.
	ErrObservationMismatch = errors.New("linreg: observation count mismatch across inputs")

	// ErrInsufficientObservations indicates dof = M - P - 1 < 1: too few
	// observations relative to the number of core covariates to calibrate
	// sampling statistics. One degree of freedom is always reserved for the
	// loop covariate itself.
	ErrInsufficientObservations = errors.New("linreg: observations insufficient for sampling statistics")

	// ErrSolveFailed indicates that the least-squares solver could not
	// produce any solution for the core-covariate projection (the solver
	// refused outright; near-singular systems do NOT trigger this — they
	// produce numerically unstable but usable residuals).
	ErrSolveFailed = errors.New("linreg: least-squares projection failed")
)
