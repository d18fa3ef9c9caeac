package lcs_test

import (
	"fmt"

	"github.com/parallelalgo/cordon/lcs"
)

func ExampleSolve() {
	length, err := lcs.Solve([]byte("ABCBDAB"), []byte("BDCABA"), false, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(length)
	// Output: 4
}

func ExampleSolveFromArrows() {
	// Row i lists the ascending positions in the second sequence where
	// the first sequence's i'th element recurs.
	arrows := [][]int{{0}, {1}, {2}}
	length, err := lcs.SolveFromArrows(arrows, false, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(length)
	// Output: 3
}
