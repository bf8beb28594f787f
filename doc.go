// Package gwalin is a batched ordinary-least-squares engine for testing
// association between many genetic variants and continuous traits, while
// controlling for a shared set of covariates.
//
// 🚀 What is gwalin?
//
//	A vectorized association-testing library that brings together:
//		• A core-covariate projector: one QR least-squares solve removes the
//		  linear effect of shared covariates from variants and traits alike
//		• A batched statistic estimator: one pass over the residualized data
//		  yields a slope, t-statistic and two-sided p-value for every
//		  (variant, trait) pair — no per-variant refitting, ever
//		• A labeled dataset layer: named variables in, named variables out
//		• A genome-association entrypoint: dosage + covariates + trait names
//		  → per-variant effect statistics along a "variants" axis
//		• A synthetic cohort generator for tests, examples and benchmarks
//
// ✨ Why choose gwalin?
//
//   - One solve, N answers – residualize once, estimate every variant at once
//   - Numerically careful – QR-backed least squares, never normal equations
//   - Honest degeneracy – a variant with no residual signal poisons its own
//     pairs only; the batch never aborts
//   - Data-parallel – independent (variant, trait) pairs split into tiles
//     across workers with no synchronization beyond the final gather
//
// Under the hood, everything is organized under four subpackages:
//
//	linreg/   — the batched regression core (project + estimate)
//	dataset/  — minimal labeled dataset abstraction (named dense variables)
//	gwas/     — genome-association entrypoint over a dataset
//	simulate/ — deterministic synthetic cohorts for tests and benchmarks
//
// Quick sketch of the data flow:
//
//	XL (M×N), XC (M×P), Y (M×O)
//	       │ residualize against XC (QR lstsq, once)
//	XLP (M×N), YP (M×O)
//	       │ one vectorized pass
//	Beta, T, P — all (N×O)
//
// Regression statistics are only valid when an intercept is present in the
// core covariates; the gwas entrypoint adds one by default.
//
//	go get github.com/katalvlaran/gwalin
package gwalin
