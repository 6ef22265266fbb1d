package pointset_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/paretodp/pointset"
)

// ExampleRead parses a tiny one-dimensional instance and sorts it.
func ExampleRead() {
	ps, err := pointset.Read(strings.NewReader("4 1\n10 0 2 1\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	ps.EnsureSorted()
	fmt.Println(ps.Coords())
	fmt.Println(ps.Permutation())
	// Output:
	// [0 1 2 10]
	// [1 3 2 0]
}
