// Package floodfill computes same-color regions on a gridgraph.Grid using
// level-synchronous frontier expansion over bitsets.
//
// What:
//
//   - Fill returns the maximal 4-connected Region of cells sharing the seed's color.
//   - Components partitions a whole grid into such regions.
//   - Apply paints a Region onto a grid; Fill itself never writes.
//
// How:
//
//	visited  ← {seed}
//	frontier ← {seed}
//	while frontier ≠ ∅:
//	    next     ← same-colored neighbors of every cell in frontier
//	    next     ← next \ visited
//	    visited  ← visited ∪ next
//	    frontier ← next
//
// Each level is whole-set algebra on bitset.BitSet, so there is no recursion and
// no per-cell revisit bookkeeping. The seed color is read once at the start and
// every neighbor is compared against it.
//
// Complexity:
//
//   - Fill: O(V·4) neighbor scans plus O(L·V/31) word operations for L levels, V = Side².
//     One candidate set is reused across levels; Difference and Union still
//     allocate a full-size set per level.
//   - Components: one Fill per region, claimed cells tracked in place. Each Fill
//     costs at least O(V/31), so R regions cost O(R·V/31); a checkerboard
//     (R = V) is the O(V²/31) worst case.
//
// Errors:
//
//   - ErrGridNil: nil grid.
//   - gridgraph.ErrIndexOutOfRange (wrapped): seed outside the grid.
//   - ErrRegionMismatch: Apply with a Region computed on a grid of another size.
package floodfill
