// SPDX-License-Identifier: MIT
// Package linreg: canonical input validation.
//
// Purpose:
//   - Provide a single source of truth for the structural preconditions of
//     Regress: non-nil inputs, positive two-dimensional extents, aligned
//     observation counts, and sufficient degrees of freedom.
//   - Return sentinel-wrapped errors tagged with the offending argument so
//     call sites can add a uniform operation prefix and callers can still
//     match with errors.Is.
//
// All checks are pure and deterministic. Structural errors fail fast before
// any numeric work; numeric degeneracies are never checked here (they
// propagate as NaN/Inf in the affected cells only).

package linreg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// validateShaped ensures m is non-nil with positive extents along both
// dimensions. The name tags the offending argument in the returned error.
func validateShaped(m *mat.Dense, name string) error {
	if m == nil {
		return fmt.Errorf("%s: %w", name, ErrNilMatrix)
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmptyMatrix)
	}

	return nil
}

// validateInputs checks the structural preconditions shared by every call:
// all three matrices present, two-dimensional, and row-aligned on the
// observation axis. Assumes nothing; safe to call with nil inputs.
func validateInputs(xl, xc, y *mat.Dense) error {
	if err := validateShaped(xl, "loop covariates"); err != nil {
		return err
	}
	if err := validateShaped(xc, "core covariates"); err != nil {
		return err
	}
	if err := validateShaped(y, "outcome"); err != nil {
		return err
	}

	mObs, _ := xl.Dims()
	if r, _ := xc.Dims(); r != mObs {
		return fmt.Errorf("core covariates have %d observations, loop covariates have %d: %w",
			r, mObs, ErrObservationMismatch)
	}
	if r, _ := y.Dims(); r != mObs {
		return fmt.Errorf("outcome has %d observations, loop covariates have %d: %w",
			r, mObs, ErrObservationMismatch)
	}

	return nil
}

// validateDOF reserves one degree of freedom for the loop covariate itself
// and requires at least one left over: dof = mObs - pCov - 1 ≥ 1.
// The message reports both counts so callers can diagnose.
func validateDOF(mObs, pCov int) (int, error) {
	dof := mObs - pCov - 1
	if dof < 1 {
		return 0, fmt.Errorf("%w: observations M=%d must exceed core covariates P=%d plus one",
			ErrInsufficientObservations, mObs, pCov)
	}

	return dof, nil
}
