package pmtree

// Mode selects what a Tree's leaves represent.
type Mode int

const (
	// KeyIndexed trees hold one caller-supplied key per leaf.
	KeyIndexed Mode = iota
	// ArrowHeadIndexed trees hold a cursor into a per-leaf row of arrow
	// heads and support PrefixMinCascade.
	ArrowHeadIndexed
)

func (m Mode) String() string {
	switch m {
	case KeyIndexed:
		return "key-indexed"
	case ArrowHeadIndexed:
		return "arrow-head-indexed"
	default:
		return "unknown"
	}
}
