package lis_test

import (
	"fmt"

	"github.com/parallelalgo/cordon/lis"
)

func ExampleSolve() {
	length, err := lis.Solve([]int{10, 9, 2, 5, 3, 7, 101, 18}, false, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(length)
	// Output: 4
}

func ExampleSolve_parallel() {
	// A strictly increasing run of 300 elements, split into small
	// subtrees by a low granularity so the tree build and the relax
	// phase genuinely fork and join (Remove always runs sequentially).
	data := make([]int, 300)
	for i := range data {
		data[i] = i
	}
	length, err := lis.Solve(data, true, 16)
	if err != nil {
		panic(err)
	}
	fmt.Println(length)
	// Output: 300
}
