package lcs

// BuildArrows builds the arrow rows SolveFromArrows expects: row i lists,
// in ascending order, every position j in b where a[i] == b[j].
func BuildArrows[T comparable](a, b []T) [][]int {
	positions := make(map[T][]int, len(b))
	for j, v := range b {
		positions[v] = append(positions[v], j)
	}
	arrows := make([][]int, len(a))
	for i, v := range a {
		arrows[i] = positions[v]
	}
	return arrows
}
