package bitset

// ordered returns the operands as (longer, shorter) by capacity.
// A nil operand behaves as an empty set of capacity 0.
func ordered(a, b *BitSet) (long, short *BitSet) {
	if a == nil {
		a = newSized(0)
	}
	if b == nil {
		b = newSized(0)
	}
	if a.capacity >= b.capacity {
		return a, b
	}

	return b, a
}

// Union returns a new set holding every index present in s or other.
// Capacity is the larger of the two; words past the shorter operand are
// copied from the longer one.
func (s *BitSet) Union(other *BitSet) *BitSet {
	long, short := ordered(s, other)
	out := newSized(long.capacity)
	copy(out.words, long.words)
	for i, w := range short.words {
		out.words[i] |= w
	}
	out.trim()

	return out
}

// Intersection returns a new set holding indices present in both s and other.
// Capacity is the smaller of the two; words past the shorter operand are dropped.
func (s *BitSet) Intersection(other *BitSet) *BitSet {
	long, short := ordered(s, other)
	out := newSized(short.capacity)
	for i := range out.words {
		out.words[i] = short.words[i] & long.words[i]
	}
	out.trim()

	return out
}

// SymmetricDifference returns a new set holding indices present in exactly one
// of s and other. Capacity is the larger of the two; words past the shorter
// operand are copied from the longer one (XOR with zero).
func (s *BitSet) SymmetricDifference(other *BitSet) *BitSet {
	long, short := ordered(s, other)
	out := newSized(long.capacity)
	copy(out.words, long.words)
	for i, w := range short.words {
		out.words[i] ^= w
	}
	out.trim()

	return out
}

// Difference returns a new set holding indices in s but not in other,
// computed as s ∩ (s △ other). The result has s's capacity:
//
//	i < min cap:  s & (s ^ o) = s &^ o
//	s longer:     trailing s words survive as s & (s ^ 0) = s
//	other longer: the intersection truncates back to s's capacity
func (s *BitSet) Difference(other *BitSet) *BitSet {
	return s.Intersection(s.SymmetricDifference(other))
}
