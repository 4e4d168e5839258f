package dataprocessing

// modeCounter finds the most frequent value. Ties go to the value whose first
// occurrence came earliest.
type modeCounter struct {
	counts map[string]int
	order  []string
}

func newModeCounter() *modeCounter {
	return &modeCounter{counts: make(map[string]int)}
}

func (m *modeCounter) Add(v string) {
	if _, seen := m.counts[v]; !seen {
		m.order = append(m.order, v)
	}
	m.counts[v]++
}

// Mode returns the most frequent value, or fallback when nothing was added.
func (m *modeCounter) Mode(fallback string) string {
	best, bestCount := fallback, 0
	for _, v := range m.order {
		if n := m.counts[v]; n > bestCount {
			best, bestCount = v, n
		}
	}
	return best
}

// Mode returns the most frequent value in values using the earliest-first
// tie-break, or fallback for an empty slice.
func Mode(values []string, fallback string) string {
	m := newModeCounter()
	for _, v := range values {
		m.Add(v)
	}
	return m.Mode(fallback)
}
