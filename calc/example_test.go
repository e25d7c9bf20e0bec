package calc_test

import (
	"fmt"

	"github.com/katalvlaran/algoprim/calc"
)

func ExampleCombinations() {
	c, _ := calc.Combinations(5, 2)
	p, _ := calc.Permutations(5, 2)
	fmt.Println(c, p)
	// Output:
	// 10 20
}

func ExampleStdDev() {
	sd, _ := calc.StdDev([]float64{2, 4, 6, 8, 10, 12, 14})
	fmt.Printf("%.4f\n", sd)
	// Output:
	// 4.0000
}
