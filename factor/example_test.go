// SPDX-License-Identifier: MIT

package factor_test

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/factor"
	"github.com/katalvlaran/lvbayes/variable"
)

// ExampleFactor_SumOut builds the joint P(Cavity, Toothache) as a product of
// P(Cavity) and P(Toothache | Cavity), then marginalizes Cavity away.
func ExampleFactor_SumOut() {
	cavity := variable.MustNew("Cavity", true, false)
	toothache := variable.MustNew("Toothache", true, false)

	prior, _ := factor.New([]*variable.RandomVariable{cavity}, []float64{0.2, 0.8})
	likelihood, _ := factor.New(
		[]*variable.RandomVariable{cavity, toothache},
		[]float64{0.6, 0.4, 0.1, 0.9},
	)

	joint, _ := prior.PointwiseProduct(likelihood)
	fmt.Println(joint.Names())

	marginal := joint.SumOut(cavity)
	fmt.Printf("%s %.2f\n", marginal.Names(), marginal.Values())

	// Output:
	// [Cavity Toothache]
	// [Toothache] [0.20 0.80]
}
