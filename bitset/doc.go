// Package bitset provides a fixed-capacity set of small non-negative integers
// packed into 31-bit words.
//
// What:
//
//   - BitSet stores membership for every integer in [0, Capacity).
//   - Add, Remove and Contains address a single index and reject anything
//     outside the capacity with ErrIndexOutOfRange.
//   - Union, Intersection, SymmetricDifference and Difference are pure: they
//     allocate a new BitSet and never touch their operands.
//
// Why:
//
//   - Flood fill and other grid traversals need visited/frontier sets whose size
//     is known up front. A packed bitset keeps each level of a traversal to a
//     handful of word operations instead of per-element map bookkeeping.
//
// Capacity rules for binary operations:
//
//   - Union, SymmetricDifference: max(a.Capacity, b.Capacity); the trailing words of
//     the longer operand are copied unchanged.
//   - Intersection: min(a.Capacity, b.Capacity); trailing words are dropped.
//   - Difference: a.Intersection(a.SymmetricDifference(b)), so always a.Capacity.
//
// Operands of differing capacity are not an error.
//
// Complexity:
//
//   - Add, Remove, Contains: O(1).
//   - Binary operations, Len, IsEmpty, ToArray: O(Capacity/31).
//
// Errors:
//
//   - ErrInvalidCapacity: capacity must be positive.
//   - ErrIndexOutOfRange: index < 0 or index ≥ Capacity.
package bitset
