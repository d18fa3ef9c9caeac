package lis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveEmptyInput(t *testing.T) {
	got, err := Solve([]int{}, false, 0)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestSolveKnownSequences(t *testing.T) {
	cases := []struct {
		name string
		data []int
		want int
	}{
		{"single", []int{5}, 1},
		{"strictly increasing", []int{1, 2, 3, 4, 5}, 5},
		{"strictly decreasing", []int{5, 4, 3, 2, 1}, 1},
		{"classic", []int{10, 9, 2, 5, 3, 7, 101, 18}, 4},
		{"with duplicates", []int{4, 4, 4, 4}, 1},
		{"zigzag", []int{1, 3, 2, 4, 3, 5}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Solve(c.data, false, 0)
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestSolveMatchesReferenceSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(60)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(20)
		}
		got, err := Solve(data, false, 0)
		require.NoError(t, err)
		require.Equal(t, Reference(data), got)
	}
}

func TestSolveMatchesReferenceParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(80)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(25)
		}
		got, err := Solve(data, true, 4)
		require.NoError(t, err)
		require.Equal(t, Reference(data), got, "data=%v", data)
	}
}

func TestSolveOnStringsUsesDefaultInfinity(t *testing.T) {
	data := []string{"b", "d", "a", "c"}
	got, err := Solve(data, false, 0)
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

func TestSolveRejectsNegativeGranularity(t *testing.T) {
	_, err := Solve([]int{1, 2, 3}, true, -1)
	require.Error(t, err)
}
