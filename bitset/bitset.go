package bitset

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// New returns an empty BitSet able to hold indices in [0, capacity).
// Returns ErrInvalidCapacity if capacity ≤ 0.
// Complexity: O(capacity/31) time and memory.
func New(capacity int) (*BitSet, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return newSized(capacity), nil
}

// Of returns a BitSet of the given capacity containing indices.
// Fails with ErrInvalidCapacity or ErrIndexOutOfRange; nothing is returned on error.
func Of(capacity int, indices ...int) (*BitSet, error) {
	s, err := New(capacity)
	if err != nil {
		return nil, err
	}
	for _, i := range indices {
		if err = s.Add(i); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// newSized allocates without validation; capacity 0 is allowed internally
// for results involving a nil operand.
func newSized(capacity int) *BitSet {
	return &BitSet{capacity: capacity, words: make([]uint32, wordCount(capacity))}
}

// Capacity returns the fixed upper bound (exclusive) of storable indices.
func (s *BitSet) Capacity() int {
	if s == nil {
		return 0
	}

	return s.capacity
}

// check validates i against the capacity. A nil set has capacity 0, so every
// index is rejected.
func (s *BitSet) check(i int) error {
	if c := s.Capacity(); i < 0 || i >= c {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, c)
	}

	return nil
}

// Add inserts i. Returns ErrIndexOutOfRange if i ∉ [0, Capacity).
func (s *BitSet) Add(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	w, m := locate(i)
	s.words[w] |= m

	return nil
}

// Remove deletes i, leaving every other index untouched.
// Returns ErrIndexOutOfRange if i ∉ [0, Capacity).
func (s *BitSet) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	w, m := locate(i)
	s.words[w] &^= m

	return nil
}

// Contains reports whether i is in the set.
// Returns ErrIndexOutOfRange if i ∉ [0, Capacity).
func (s *BitSet) Contains(i int) (bool, error) {
	if err := s.check(i); err != nil {
		return false, err
	}

	return s.has(i), nil
}

// has is Contains without the bounds check; callers guarantee 0 ≤ i < capacity.
func (s *BitSet) has(i int) bool {
	w, m := locate(i)
	return s.words[w]&m != 0
}

// Reset clears every index in place, keeping the capacity and storage.
func (s *BitSet) Reset() {
	if s == nil {
		return
	}
	clear(s.words)
}

// IsEmpty reports whether no index is set.
func (s *BitSet) IsEmpty() bool {
	if s == nil {
		return true
	}
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// Len returns the number of indices in the set.
func (s *BitSet) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount32(w)
	}

	return n
}

// ToArray returns every index in ascending order. The slice is freshly
// allocated on each call.
func (s *BitSet) ToArray() []int {
	out := make([]int, 0, s.Len())
	if s == nil {
		return out
	}
	for wi, w := range s.words {
		base := wi * wordBits
		for w != 0 {
			b := bits.TrailingZeros32(w)
			out = append(out, base+b)
			w &= w - 1 // drop lowest set bit
		}
	}

	return out
}

// Clone returns an independent copy.
func (s *BitSet) Clone() *BitSet {
	if s == nil {
		return newSized(0)
	}
	c := newSized(s.capacity)
	copy(c.words, s.words)

	return c
}

// Equal reports whether both sets have the same capacity and members.
func (s *BitSet) Equal(other *BitSet) bool {
	if s.Capacity() != other.Capacity() {
		return false
	}
	if s == nil || other == nil {
		return s.IsEmpty() && other.IsEmpty()
	}
	for i, w := range s.words {
		if other.words[i] != w {
			return false
		}
	}

	return true
}

// String renders the members as "{a b c}".
func (s *BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for n, i := range s.ToArray() {
		if n > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(i))
	}
	sb.WriteByte('}')

	return sb.String()
}

// trim clears any bit at or beyond capacity in the last word.
func (s *BitSet) trim() {
	if len(s.words) == 0 {
		return
	}
	if r := s.capacity % wordBits; r != 0 {
		s.words[len(s.words)-1] &= uint32(1)<<uint(r) - 1
	}
	for i := range s.words {
		s.words[i] &= fullWord
	}
}
