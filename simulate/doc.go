// Package simulate generates deterministic synthetic cohorts — dosage
// matrices, covariates and traits built from a known linear model — for
// tests, examples and benchmarks.
//
// Every draw flows from Config.Seed through a PCG source, so a config value
// identifies its cohort exactly. The generating truth (the true variant and
// covariate effects) rides along in the Cohort so tests can compare
// recovered statistics against it.
//
// ⚙️ Usage:
//
//	cohort := simulate.NewCohort(simulate.DefaultConfig())
//	ds, err := cohort.Dataset() // ready for gwas.LinearRegression
package simulate
