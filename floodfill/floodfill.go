package floodfill

import (
	"fmt"

	"github.com/katalvlaran/pixelfill/bitset"
	"github.com/katalvlaran/pixelfill/gridgraph"
)

// Fill returns the maximal 4-connected region of cells reachable from seed
// through cells holding the seed's color. The grid is only read.
// Returns ErrGridNil for a nil grid, or a wrapped gridgraph.ErrIndexOutOfRange
// when seed lies outside it.
func Fill[C comparable](g *gridgraph.Grid[C], seed gridgraph.Coordinate, opts ...Option) (*Region, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, err := g.Index(seed)
	if err != nil {
		return nil, fmt.Errorf("floodfill: seed: %w", err)
	}
	target, _ := g.At(start)

	n := g.Len()
	visited, err := bitset.Of(n, start)
	if err != nil {
		return nil, err
	}
	frontier := visited.Clone()
	// cand collects each level's same-colored neighbors and is reused across levels.
	cand, _ := bitset.New(n)
	nbuf := make([]int, 0, 4)

	for level := 1; !frontier.IsEmpty(); level++ {
		cand.Reset()
		for _, i := range frontier.ToArray() {
			nbuf, _ = g.NeighborIndices(i, nbuf[:0])
			for _, j := range nbuf {
				if c, _ := g.At(j); c == target {
					_ = cand.Add(j)
				}
			}
		}
		next := cand.Difference(visited)
		visited = visited.Union(next)
		frontier = next
		o.OnLevel(level, next.Len())
	}

	return &Region{Seed: seed, side: g.Side(), set: visited}, nil
}

// Components partitions g into same-color regions, scanning cells in row-major
// order and filling from each cell not yet claimed. Regions are returned in the
// order their first cell appears.
func Components[C comparable](g *gridgraph.Grid[C]) ([]*Region, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	claimed, err := bitset.New(g.Len())
	if err != nil {
		return nil, err
	}

	var comps []*Region
	for i := 0; i < g.Len(); i++ {
		if ok, _ := claimed.Contains(i); ok {
			continue
		}
		c, _ := g.Coordinate(i)
		r, err := Fill(g, c)
		if err != nil {
			return nil, err
		}
		for _, j := range r.Indices() {
			_ = claimed.Add(j)
		}
		comps = append(comps, r)
	}

	return comps, nil
}

// Apply paints every cell of r with color. It is the caller-side counterpart
// of Fill. Returns ErrRegionMismatch if r was computed on a grid of another side.
func Apply[C comparable](g *gridgraph.Grid[C], r *Region, color C) error {
	if g == nil {
		return ErrGridNil
	}
	if r == nil || r.side != g.Side() {
		return ErrRegionMismatch
	}
	for _, c := range r.Coordinates() {
		if err := g.Set(c, color); err != nil {
			return err
		}
	}

	return nil
}
