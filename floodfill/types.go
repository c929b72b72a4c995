package floodfill

import (
	"errors"

	"github.com/katalvlaran/pixelfill/bitset"
	"github.com/katalvlaran/pixelfill/gridgraph"
)

// Sentinel errors for flood fill.
var (
	// ErrGridNil is returned when a nil grid is passed.
	ErrGridNil = errors.New("floodfill: grid is nil")
	// ErrRegionMismatch is returned when a Region does not fit the target grid.
	ErrRegionMismatch = errors.New("floodfill: region does not match grid size")
)

// Option configures Fill via functional arguments.
type Option func(*Options)

// Options holds the hooks available to Fill.
type Options struct {
	// OnLevel is called after each frontier expansion with the 1-based level
	// number and how many cells that level discovered. The final call reports 0.
	OnLevel func(level, discovered int)
}

// DefaultOptions returns Options with a no-op OnLevel hook.
func DefaultOptions() Options {
	return Options{
		OnLevel: func(int, int) {},
	}
}

// WithOnLevel registers a per-level progress hook.
func WithOnLevel(fn func(level, discovered int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// Region is the result of a fill: a set of cells on a grid of a given side.
// It owns its storage, so later changes to the grid do not affect it.
type Region struct {
	// Seed is the coordinate the region was grown from.
	Seed gridgraph.Coordinate

	side int
	set  *bitset.BitSet
}

// Side returns the dimension of the grid the region was computed on.
func (r *Region) Side() int {
	return r.side
}

// Len returns the number of cells in the region.
func (r *Region) Len() int {
	return r.set.Len()
}

// Contains reports whether c belongs to the region. Coordinates outside the
// grid are never members.
func (r *Region) Contains(c gridgraph.Coordinate) bool {
	if c.X < 0 || c.X >= r.side || c.Y < 0 || c.Y >= r.side {
		return false
	}
	ok, _ := r.set.Contains(c.Y*r.side + c.X)

	return ok
}

// Indices returns the row-major indices of the region in ascending order.
func (r *Region) Indices() []int {
	return r.set.ToArray()
}

// Coordinates returns the region's cells in row-major order.
func (r *Region) Coordinates() []gridgraph.Coordinate {
	idx := r.set.ToArray()
	out := make([]gridgraph.Coordinate, len(idx))
	for k, i := range idx {
		out[k] = gridgraph.Coordinate{X: i % r.side, Y: i / r.side}
	}

	return out
}

// Set returns a copy of the backing bitset.
func (r *Region) Set() *bitset.BitSet {
	return r.set.Clone()
}
