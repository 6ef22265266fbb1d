package cost_test

import (
	"fmt"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/pointset"
)

// ExampleNew compares both criteria on the same interval.
func ExampleNew() {
	ps, _ := pointset.New(4, 1, []float64{0, 1, 2, 10})

	medoids, _ := cost.New(cost.Medoids, ps, cost.DefaultOptions())
	median, _ := cost.New(cost.Median, ps, cost.DefaultOptions())

	fmt.Println(medoids.Criterion(), medoids.IntervalCost(1, 3))
	fmt.Println(median.Criterion(), median.IntervalCost(1, 3))
	fmt.Println(medoids.CostsEndingAt(3, 4, nil))
	// Output:
	// medoids 65
	// median 9
	// [0 64 65 69]
}
