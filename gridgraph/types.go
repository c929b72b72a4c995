package gridgraph

import "fmt"

// Coordinate addresses a single cell: X is the column, Y the row.
type Coordinate struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a Side×Side board of colors. Side is fixed at construction;
// cells[y*side+x] holds the color at (x,y) and len(cells) == side*side always.
// A Grid is not safe for concurrent mutation.
type Grid[C comparable] struct {
	side  int
	cells []C
}

// neighborOffsets lists the orthogonal steps in N, E, S, W order.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
