package coupling

// AngularTuple is an ordered sequence of non-negative angular momenta
// l_1..l_N identifying one coupling channel. Treat it as immutable once
// handed to a Calculator or basis builder.
type AngularTuple []int

// MagneticTuple is an ordered sequence of magnetic quantum numbers
// m_1..m_N (or k_1..k_N). During enumeration it always satisfies
// |m_i| ≤ l_i and Σm_i = 0; the last component is the negated sum of the
// others, never an independent choice.
type MagneticTuple []int

// Sum returns Σl_i.
func (ll AngularTuple) Sum() int {
	s := 0
	for _, l := range ll {
		s += l
	}

	return s
}

// Sum returns Σm_i.
func (mm MagneticTuple) Sum() int {
	s := 0
	for _, m := range mm {
		s += m
	}

	return s
}

// keyOffset shifts magnetic values into byte range when encoding cache
// keys. Magnetic numbers are bounded by their l, and angular momenta
// beyond ~100 are far outside any practical cluster expansion.
const keyOffset = 100

// tupleKey encodes (ll, mm, kk) into a compact string key. All three
// tuples must share the same length; values must lie in
// [-keyOffset, 255-keyOffset).
func tupleKey(ll AngularTuple, mm, kk MagneticTuple) string {
	b := make([]byte, 0, 3*len(ll))
	for _, l := range ll {
		b = append(b, byte(l+keyOffset))
	}
	for _, m := range mm {
		b = append(b, byte(m+keyOffset))
	}
	for _, k := range kk {
		b = append(b, byte(k+keyOffset))
	}

	return string(b)
}
