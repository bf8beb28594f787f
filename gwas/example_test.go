// SPDX-License-Identifier: MIT

package gwas_test

import (
	"fmt"

	"github.com/katalvlaran/gwalin/gwas"
	"github.com/katalvlaran/gwalin/simulate"
)

// ExampleLinearRegression runs an association scan over a simulated cohort
// and inspects the labeled result.
func ExampleLinearRegression() {
	cfg := simulate.DefaultConfig()
	cfg.Variants = 50
	cfg.Samples = 120
	cohort := simulate.NewCohort(cfg)

	ds, err := cohort.Dataset()
	if err != nil {
		fmt.Println("dataset packing failed:", err)

		return
	}

	out, err := gwas.LinearRegression(ds,
		cohort.CovariateNames(),
		simulate.VarDosage,
		simulate.VarTrait,
	)
	if err != nil {
		fmt.Println("association scan failed:", err)

		return
	}

	fmt.Println("variables:", out.Names())
	beta, _ := out.Get(gwas.VarBeta)
	fmt.Println("dims:     ", beta.Dims())
	fmt.Println("shape:    ", beta.Shape())
	// Output:
	// variables: [variant_beta variant_t_value variant_p_value]
	// dims:      [variants outcomes]
	// shape:     [50 1]
}
