package floodfill_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pixelfill/floodfill"
	"github.com/katalvlaran/pixelfill/gridgraph"
)

// BenchmarkFill_Uniform measures a whole-canvas fill on a 50×50 grid,
// the size of a typical pixel-art board.
func BenchmarkFill_Uniform(b *testing.B) {
	g, err := gridgraph.New(50, uint8(0))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	seed := gridgraph.Coordinate{X: 25, Y: 25}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = floodfill.Fill(g, seed)
	}
}

// BenchmarkComponents measures partitioning a random 3-color 200×200 grid.
func BenchmarkComponents(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	cells := make([]uint8, n*n)
	for i := range cells {
		cells[i] = uint8(rng.Intn(3))
	}
	g, err := gridgraph.FromCells(n, cells)
	if err != nil {
		b.Fatalf("setup FromCells failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = floodfill.Components(g)
	}
}
