package bitset

import "errors"

// Sentinel errors for bitset operations.
var (
	// ErrInvalidCapacity indicates a non-positive capacity was requested.
	ErrInvalidCapacity = errors.New("bitset: capacity must be positive")
	// ErrIndexOutOfRange indicates an index outside [0, Capacity).
	ErrIndexOutOfRange = errors.New("bitset: index out of range")
)

// wordBits is the number of payload bits per word. The top bit of every
// uint32 is never set.
const wordBits = 31

// fullWord has all wordBits payload bits set.
const fullWord uint32 = 1<<wordBits - 1

// BitSet is a fixed-capacity set of integers in [0, Capacity).
// words[i] holds indices [i*31, i*31+31); bit b of words[i] is index i*31+b.
// No bit at or beyond capacity is ever set.
type BitSet struct {
	capacity int
	words    []uint32
}

// wordCount returns ceil(capacity / wordBits).
func wordCount(capacity int) int {
	return (capacity + wordBits - 1) / wordBits
}

// locate splits an index into its word offset and single-bit mask.
func locate(i int) (int, uint32) {
	return i / wordBits, uint32(1) << uint(i%wordBits)
}
