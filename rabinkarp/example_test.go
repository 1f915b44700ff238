package rabinkarp_test

import (
	"fmt"

	"github.com/katalvlaran/strlab/rabinkarp"
)

// ExampleFindAll locates every occurrence via the rolling hash.
func ExampleFindAll() {
	fmt.Println(rabinkarp.FindAll("abracadabra", "abra"))
	fmt.Println(rabinkarp.FindAll("aaaaaa", "aaa"))
	// Output:
	// [0 7]
	// [0 1 2 3]
}
