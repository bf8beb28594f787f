// Package gwas runs genome-wide association linear regression over a
// labeled dataset: it names the inputs (dosage matrix, covariate columns,
// continuous trait), delegates to the batched linreg core, and hands back
// per-variant effect statistics as named variables.
//
// 🚀 What does it do?
//
//	For each variant (row of the dosage matrix) it reports the OLS slope,
//	t-statistic and two-sided p-value of the trait on that variant's
//	dosage, with the shared covariates — age, sex, ancestry components —
//	projected out. All variants are solved simultaneously in one batch.
//
// ⚙️ Usage:
//
//	out, err := gwas.LinearRegression(ds,
//	  []string{"age", "sex", "pc1", "pc2"}, // core covariates
//	  "call_dosage",                        // (variants, samples)
//	  "trait_height",                       // continuous outcome
//	)
//	if err != nil { ... }
//	pv, _ := out.Get(gwas.VarPValue) // (variants, outcomes)
//
// An intercept column is prepended to the covariates by default; see
// WithIntercept. Statistics from this entrypoint are only valid when an
// intercept is present, either injected or supplied explicitly.
//
// A consequence of the orthogonal-projection rotation is that effect sizes
// and significances are reported for variants only, never for covariates.
package gwas
