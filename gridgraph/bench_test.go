package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/nadlgit/gridsearch/gridgraph"
)

// BenchmarkWrap measures folding random far-away points back into a 131×131 tile.
func BenchmarkWrap(b *testing.B) {
	const n = 131
	rng := rand.New(rand.NewSource(42))
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
		for c := range cells[r] {
			cells[r][c] = rng.Intn(5)
		}
	}
	g, err := gridgraph.New(cells)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	pts := make([]gridgraph.Point, 1024)
	for i := range pts {
		pts[i] = gridgraph.Point{Row: rng.Intn(1<<20) - 1<<19, Col: rng.Intn(1<<20) - 1<<19}
	}

	b.ResetTimer()
	sum := 0
	for i := 0; i < b.N; i++ {
		sum += g.AtWrapped(pts[i%len(pts)])
	}
	_ = sum
}
