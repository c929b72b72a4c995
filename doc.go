// Package pixelfill is a flood-fill engine for square pixel-art canvases.
//
// What is inside:
//
//	bitset/    — fixed-capacity set of small integers packed into 31-bit words
//	gridgraph/ — Grid[C]: Side×Side cells of any comparable color, 4-neighbor adjacency
//	floodfill/ — Fill, Components and Apply: bitset-driven region growing
//	session/   — explicit editing context and stroke / fill commands
//
// Quick ASCII example:
//
//	. . # .        Fill seeded at (0,0) returns the five '.' cells on the left
//	. . # .        of the wall; the wall and everything right of it stay out.
//	. # # .
//	# . . .
//
// Fill never writes to the grid. Apply (or a session FloodFillAt command)
// paints the returned Region.
//
//	go get github.com/katalvlaran/pixelfill
package pixelfill
