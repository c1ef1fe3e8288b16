package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/hopgraph/dijkstra"
)

// BenchmarkRun_Random measures one single-source run on a sparse random graph.
func BenchmarkRun_Random(b *testing.B) {
	g := randomGraph(42, 2000, 8000)
	adj := g.Adjacency()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Run(adj, i%len(adj))
	}
}
