package selector

import "fmt"

type span struct {
	start, end int // inclusive
}

// Selection is a compiled index selection.
type Selection struct {
	all   bool
	spans []span
}

// All reports whether the selection covers every index.
func (s *Selection) All() bool {
	return s.all
}

// Contains reports whether index i is selected.
func (s *Selection) Contains(i int) bool {
	if s.all {
		return true
	}
	for _, sp := range s.spans {
		if i >= sp.start && i <= sp.end {
			return true
		}
	}
	return false
}

// Max returns the highest index named by the selection, or -1 when it
// selects everything or nothing explicit.
func (s *Selection) Max() int {
	if s.all {
		return -1
	}
	max := -1
	for _, sp := range s.spans {
		if sp.end > max {
			max = sp.end
		}
	}
	return max
}

// Indices resolves the selection against a collection of n elements,
// returning the selected indexes in ascending order. Indexes beyond
// n-1 yield an error rather than being silently dropped.
func (s *Selection) Indices(n int) ([]int, error) {
	if m := s.Max(); m >= n {
		return nil, fmt.Errorf("selector: index %d out of range (have %d)", m, n)
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if s.Contains(i) {
			out = append(out, i)
		}
	}
	return out, nil
}
