package coupling

// store is the per-body-order coupling cache: one map per N, created
// lazily on first use of that body order. Entries are append-only and
// live until the owning Calculator is discarded.
type store struct {
	byOrder map[int]map[string]float64
}

func newStore() *store {
	return &store{byOrder: make(map[int]map[string]float64)}
}

// lookup returns the cached value for (n, key), if present.
func (s *store) lookup(n int, key string) (float64, bool) {
	m, ok := s.byOrder[n]
	if !ok {
		return 0, false
	}
	v, ok := m[key]

	return v, ok
}

// put records a computed value, allocating the order-n map on first use.
func (s *store) put(n int, key string, v float64) {
	m, ok := s.byOrder[n]
	if !ok {
		m = make(map[string]float64)
		s.byOrder[n] = m
	}
	m[key] = v
}

// stats reports the entry count per body order.
func (s *store) stats() map[int]int {
	out := make(map[int]int, len(s.byOrder))
	for n, m := range s.byOrder {
		out[n] = len(m)
	}

	return out
}
