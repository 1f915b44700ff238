package bwt_test

import (
	"fmt"

	"github.com/katalvlaran/strlab/bwt"
)

// ExampleTransform shows how the transform clusters equal symbols, and
// that Inverse undoes it exactly.
func ExampleTransform() {
	last, idx, err := bwt.Transform("banana")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%q %d\n", last, idx)

	orig, err := bwt.Inverse(last, idx)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(orig)
	// Output:
	// "annb\x00aa" 4
	// banana
}
