package lcs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parallelalgo/cordon/lcs"
)

func TestSolveEmptyInput(t *testing.T) {
	length, err := lcs.Solve[byte](nil, []byte("BDCABA"), false, 0)
	require.NoError(t, err)
	require.Equal(t, 0, length)

	length, err = lcs.Solve[byte]([]byte("BDCABA"), nil, false, 0)
	require.NoError(t, err)
	require.Equal(t, 0, length)

	length, err = lcs.Solve[byte](nil, nil, false, 0)
	require.NoError(t, err)
	require.Equal(t, 0, length)
}

func TestSolveKnownSequences(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"classic", "ABCBDAB", "BDCABA", 4},
		{"identical", "AGGTAB", "AGGTAB", 6},
		{"disjoint", "ABC", "XYZ", 0},
		{"repeating", "ABAB", "BABA", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			length, err := lcs.Solve([]byte(c.a), []byte(c.b), false, 0)
			require.NoError(t, err)
			require.Equal(t, c.want, length)
		})
	}
}

func TestSolveFromArrowsKnown(t *testing.T) {
	length, err := lcs.SolveFromArrows([][]int{{0}, {1}, {2}}, false, 0)
	require.NoError(t, err)
	require.Equal(t, 3, length)
}

func TestSolveFromArrowsRejectsUnsortedRow(t *testing.T) {
	_, err := lcs.SolveFromArrows([][]int{{2, 1}}, false, 0)
	require.ErrorIs(t, err, lcs.ErrArrowsNotSorted)
}

func TestSolveIntSequences(t *testing.T) {
	a := []int{1, 3, 4, 1, 2, 3}
	b := []int{3, 4, 1, 2, 1, 3}
	length, err := lcs.Solve(a, b, false, 0)
	require.NoError(t, err)
	require.Equal(t, lcs.Reference(a, b), length)
}

func TestSolveMatchesReferenceSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	alphabet := []byte("ABCD")
	for trial := 0; trial < 60; trial++ {
		n := rng.Intn(20)
		m := rng.Intn(20)
		a := randomBytes(rng, alphabet, n)
		b := randomBytes(rng, alphabet, m)

		got, err := lcs.Solve(a, b, false, 0)
		require.NoError(t, err)
		require.Equal(t, lcs.Reference(a, b), got)
	}
}

func TestSolveMatchesReferenceParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	alphabet := []byte("ABCDE")
	for trial := 0; trial < 60; trial++ {
		n := rng.Intn(40)
		m := rng.Intn(40)
		a := randomBytes(rng, alphabet, n)
		b := randomBytes(rng, alphabet, m)

		got, err := lcs.Solve(a, b, true, 3)
		require.NoError(t, err)
		require.Equal(t, lcs.Reference(a, b), got)
	}
}

func TestBuildArrowsMatchesPositions(t *testing.T) {
	arrows := lcs.BuildArrows([]byte("ABAB"), []byte("BABA"))
	require.Equal(t, [][]int{{1, 3}, {0, 2}, {1, 3}, {0, 2}}, arrows)
}

func randomBytes(rng *rand.Rand, alphabet []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return out
}
