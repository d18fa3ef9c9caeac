package glws_test

import (
	"fmt"
	"math"
	"sort"

	"github.com/parallelalgo/cordon/glws"
)

// ExampleSolve covers a small facility-placement instance: place
// clusters along a line of positions where each cluster costs a fixed
// build cost plus the sum of absolute deviations from its median.
func ExampleSolve() {
	positions := []float64{1, 2, 3, 7, 8, 9, 10}
	const buildCost = 10.0

	cost := func(j, i int, p []float64) float64 {
		segment := append([]float64(nil), p[j+1:i+1]...)
		sort.Float64s(segment)
		median := segment[len(segment)/2]
		total := buildCost
		for _, v := range segment {
			total += math.Abs(v - median)
		}
		return total
	}

	total, err := glws.Solve(positions, cost, false, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(total)
	// Output: 25
}
