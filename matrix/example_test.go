package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/paretodp/matrix"
)

// ExampleNewFilled builds a 2×3 table of unreachable cells and fills part of
// it, the way a DP table starts out.
func ExampleNewFilled() {
	m, _ := matrix.NewFilled(2, 3, math.Inf(1))
	_ = m.Set(0, 0, 0)
	_ = m.Set(0, 1, 1)
	_ = m.Set(1, 1, 0)

	fmt.Print(m)

	err := m.Set(1, 2, math.NaN())
	fmt.Println(err)
	// Output:
	// [0, 1, ∞]
	// [∞, 0, ∞]
	// Dense.Set(1,2): matrix: NaN or -Inf encountered
}
