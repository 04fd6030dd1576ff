package cg

// key is the literal 6-tuple of ClebschGordan arguments. No symmetry-based
// key reduction is attempted: the map stays simple and lookups stay O(1).
type key struct {
	j1, m1, j2, m2, j, m int
}

// Cache memoizes ClebschGordan values for one computation session.
//
// Semantics:
//   - append-only: entries are never evicted or invalidated;
//   - lazy: an entry is computed on first lookup;
//   - invalid keys (triangle/magnetic-sum/bound failure) return 0 and are
//     NOT stored — there is no point spending memory on known zeros;
//   - not safe for concurrent use; give each goroutine its own Cache.
//
// A Cache owns no other resources; discard it to free the memory.
type Cache struct {
	vals map[key]float64
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{vals: make(map[key]float64)}
}

// ClebschGordan returns the same value as the package-level ClebschGordan,
// memoized on the literal argument tuple.
func (c *Cache) ClebschGordan(j1, m1, j2, m2, J, M int) float64 {
	if !couplingAllowed(j1, m1, j2, m2, J, M) {
		return 0
	}
	k := key{j1, m1, j2, m2, J, M}
	if v, ok := c.vals[k]; ok {
		return v
	}
	v := compute(j1, m1, j2, m2, J, M)
	c.vals[k] = v

	return v
}

// Len reports the number of memoized coefficients.
func (c *Cache) Len() int {
	return len(c.vals)
}
