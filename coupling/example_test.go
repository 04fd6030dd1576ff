package coupling_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rotsym/coupling"
)

// ExampleCalculator_Coupling evaluates the two-body closed form
// 8π²/(2l+1)·(-1)^(m-k) for l=1, m=1, k=0.
func ExampleCalculator_Coupling() {
	c := coupling.New()
	v := c.Coupling(
		coupling.AngularTuple{1, 1},
		coupling.MagneticTuple{1, -1},
		coupling.MagneticTuple{0, 0})
	fmt.Printf("%.6f\n", v/(8*math.Pi*math.Pi))
	// Output:
	// -0.333333
}
