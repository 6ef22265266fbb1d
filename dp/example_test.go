package dp_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paretodp/cost"
	"github.com/katalvlaran/paretodp/dp"
	"github.com/katalvlaran/paretodp/pointset"
)

// ExampleEngine_Solve splits four points on a line into two clusters.
func ExampleEngine_Solve() {
	ps, _ := pointset.New(4, 1, []float64{10, 0, 2, 1})

	e := dp.New(cost.Medoids, dp.DefaultOptions())
	e.SetPoints(ps)
	e.SetClusterCount(2)
	if err := e.Solve(); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println("cost:", e.SolutionCost())
	fmt.Println("intervals:", e.Intervals())
	fmt.Println("labels (input order):", ps.LabelsInInputOrder())
	// Output:
	// cost: 2
	// intervals: [[0, 2] [3, 3]]
	// labels (input order): [2 1 1 1]
}

// ExampleEngine_ParetoFront reads the optimum for every K from one table.
func ExampleEngine_ParetoFront() {
	ps, _ := pointset.New(5, 1, []float64{0, 1, 5, 6, 20})

	e := dp.New(cost.Median, dp.DefaultOptions())
	e.SetPoints(ps)
	e.SetClusterCount(4)
	_ = e.Solve()

	for k, c := range e.ParetoFront() {
		fmt.Printf("K=%d cost=%g\n", k+1, c)
	}
	// Output:
	// K=1 cost=25
	// K=2 cost=10
	// K=3 cost=2
	// K=4 cost=1
}

// ExampleEngine_Solve_infeasible shows the partial result of K > N.
func ExampleEngine_Solve_infeasible() {
	ps, _ := pointset.New(2, 1, []float64{0, 4})

	e := dp.New(cost.Medoids, dp.DefaultOptions())
	e.SetPoints(ps)
	e.SetDefaultClusterCount()
	err := e.Solve()

	sol := e.Solution()
	fmt.Println(errors.Is(err, dp.ErrPartitionInfeasible), sol.Status, sol.Complete, sol.Cost)
	// Output:
	// true degenerate false +Inf
}
