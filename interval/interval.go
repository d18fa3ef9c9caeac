package interval

// Entry is one run of the predecessor set: states L..R currently have
// their best predecessor at index J.
type Entry struct {
	L, R, J int
}

// Set is an ordered, pairwise-disjoint, run-length compressed collection
// of Entry values, sorted by L.
type Set struct {
	entries []Entry
}

// New returns an empty predecessor set.
func New() *Set {
	return &Set{}
}

// Len reports the number of runs, not the number of states covered.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns the runs in sorted order. The caller must not mutate
// the returned slice.
func (s *Set) Entries() []Entry {
	return s.entries
}

// Append adds a new run to the end of the set. Ranges must be appended
// in increasing, non-overlapping order (the natural order in which the
// decision-interval compressor and the Cordon driver produce them). A
// run that abuts the previous one and shares the same J is merged into
// it rather than stored separately.
func (s *Set) Append(l, r, j int) error {
	if r < l {
		return ErrEmptyRange
	}
	if n := len(s.entries); n > 0 {
		last := &s.entries[n-1]
		if l <= last.R {
			return ErrOverlap
		}
		if last.J == j && last.R+1 == l {
			last.R = r
			return nil
		}
	}
	s.entries = append(s.entries, Entry{L: l, R: r, J: j})
	return nil
}

// FindBest returns the predecessor recorded for state i. Linear scan is
// deliberate: B stays small (amortized O(log n) runs for convex costs),
// so a binary search would only add complexity without a measurable win.
func (s *Set) FindBest(i int) (int, bool) {
	for _, e := range s.entries {
		if i >= e.L && i <= e.R {
			return e.J, true
		}
	}
	return 0, false
}

// TrimBefore drops every run that lies entirely before cordon, i.e. runs
// describing states that have since been finalized and can never be
// queried again.
func (s *Set) TrimBefore(cordon int) {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.R >= cordon {
			kept = append(kept, e)
		}
	}
	s.entries = kept
}

// Clip returns the runs of s restricted to [lo, hi], splitting boundary
// runs as needed. The result is not merged; call Compact if needed.
func (s *Set) Clip(lo, hi int) []Entry {
	var out []Entry
	for _, e := range s.entries {
		if e.R < lo || e.L > hi {
			continue
		}
		l, r := e.L, e.R
		if l < lo {
			l = lo
		}
		if r > hi {
			r = hi
		}
		out = append(out, Entry{L: l, R: r, J: e.J})
	}
	return out
}

// Compact merges adjacent runs that share the same predecessor and abut
// exactly, restoring the "no two adjacent entries share J" invariant
// after a bulk rebuild that skipped Append's incremental merge.
func (s *Set) Compact() {
	if len(s.entries) < 2 {
		return
	}
	out := s.entries[:1]
	for _, e := range s.entries[1:] {
		last := &out[len(out)-1]
		if last.J == e.J && last.R+1 == e.L {
			last.R = e.R
			continue
		}
		out = append(out, e)
	}
	s.entries = out
}

// Validate checks the run invariants: sorted, disjoint, no two adjacent
// runs share the same predecessor. Intended for tests, not hot paths.
func (s *Set) Validate() error {
	for i, e := range s.entries {
		if e.R < e.L {
			return ErrEmptyRange
		}
		if i > 0 {
			prev := s.entries[i-1]
			if e.L <= prev.R {
				return ErrOverlap
			}
			if prev.J == e.J && prev.R+1 == e.L {
				return ErrNotCompacted
			}
		}
	}
	return nil
}
