package gridgraph

import (
	"fmt"
	"math"
)

// validSide reports whether side is positive and side*side fits in an int.
func validSide(side int) bool {
	return side > 0 && side <= math.MaxInt/side
}

// New constructs a side×side grid with every cell set to fill.
// Returns ErrInvalidSide if side ≤ 0 or side² overflows int.
// Complexity: O(side²) time and memory.
func New[C comparable](side int, fill C) (*Grid[C], error) {
	if !validSide(side) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	cells := make([]C, side*side)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid[C]{side: side, cells: cells}, nil
}

// FromCells restores a grid from row-major cells (cells[y*side+x]).
// The slice is deep-copied so later changes by the caller do not leak in.
// Returns ErrInvalidSide if side ≤ 0 or side² overflows int, ErrCellCount if len(cells) ≠ side*side.
func FromCells[C comparable](side int, cells []C) (*Grid[C], error) {
	if !validSide(side) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	if len(cells) != side*side {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCellCount, len(cells), side*side)
	}
	cp := make([]C, len(cells))
	copy(cp, cells)

	return &Grid[C]{side: side, cells: cp}, nil
}

// Side returns the grid dimension.
func (g *Grid[C]) Side() int {
	return g.side
}

// Len returns the number of cells, Side².
func (g *Grid[C]) Len() int {
	return len(g.cells)
}

// InBounds reports whether c lies within [0, Side) on both axes.
// Complexity: O(1).
func (g *Grid[C]) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.side && c.Y >= 0 && c.Y < g.side
}

// Index maps c to its row-major index Y*Side + X.
// Returns ErrIndexOutOfRange if c is outside the grid.
func (g *Grid[C]) Index(c Coordinate) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v on side %d", ErrIndexOutOfRange, c, g.side)
	}

	return c.Y*g.side + c.X, nil
}

// Coordinate converts a row-major index back to (index % Side, index / Side).
// Returns ErrIndexOutOfRange if index ∉ [0, Side²).
func (g *Grid[C]) Coordinate(index int) (Coordinate, error) {
	if index < 0 || index >= len(g.cells) {
		return Coordinate{}, fmt.Errorf("%w: index %d on side %d", ErrIndexOutOfRange, index, g.side)
	}

	return Coordinate{X: index % g.side, Y: index / g.side}, nil
}

// Get returns the color at c.
func (g *Grid[C]) Get(c Coordinate) (C, error) {
	i, err := g.Index(c)
	if err != nil {
		var zero C
		return zero, err
	}

	return g.cells[i], nil
}

// At returns the color at a row-major index.
func (g *Grid[C]) At(index int) (C, error) {
	if index < 0 || index >= len(g.cells) {
		var zero C
		return zero, fmt.Errorf("%w: index %d on side %d", ErrIndexOutOfRange, index, g.side)
	}

	return g.cells[index], nil
}

// Set stores color at c. An out-of-range c leaves the grid untouched.
func (g *Grid[C]) Set(c Coordinate, color C) error {
	i, err := g.Index(c)
	if err != nil {
		return err
	}
	g.cells[i] = color

	return nil
}

// Neighbors returns the in-bounds orthogonal neighbors of c in N, E, S, W order.
// Edge cells yield three, corner cells two, and a 1×1 grid none.
func (g *Grid[C]) Neighbors(c Coordinate) ([]Coordinate, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v on side %d", ErrIndexOutOfRange, c, g.side)
	}
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// NeighborIndices appends the row-major indices of the in-bounds orthogonal
// neighbors of index to dst, in the same order as Neighbors.
// Passing a reused dst[:0] keeps traversals allocation-free.
func (g *Grid[C]) NeighborIndices(index int, dst []int) ([]int, error) {
	if index < 0 || index >= len(g.cells) {
		return dst, fmt.Errorf("%w: index %d on side %d", ErrIndexOutOfRange, index, g.side)
	}
	x, y := index%g.side, index/g.side
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.side || ny < 0 || ny >= g.side {
			continue
		}
		dst = append(dst, ny*g.side+nx)
	}

	return dst, nil
}

// Cells returns a row-major copy of all cells.
func (g *Grid[C]) Cells() []C {
	cp := make([]C, len(g.cells))
	copy(cp, g.cells)

	return cp
}

// Clone returns an independent copy of the grid.
func (g *Grid[C]) Clone() *Grid[C] {
	return &Grid[C]{side: g.side, cells: g.Cells()}
}
