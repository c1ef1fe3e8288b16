package metrics_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/metrics"
)

var scenarioEdges = [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {2, 4}, {3, 4}}

func buildGraph(t testing.TB, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

func TestDegrees_Scenario(t *testing.T) {
	g := buildGraph(t, scenarioEdges)
	if got, want := metrics.Degrees(g), []int{3, 2, 3, 4, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Degrees = %v; want %v", got, want)
	}
	if got, want := metrics.DegreeDistribution(g), map[int]int{2: 2, 3: 2, 4: 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("DegreeDistribution = %v; want %v", got, want)
	}
}

func TestSecondHop_Scenario(t *testing.T) {
	g := buildGraph(t, scenarioEdges)
	if got, want := metrics.SecondHop(g), []int{1, 2, 1, 0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("SecondHop = %v; want %v", got, want)
	}
}

func TestMetrics_Degenerate(t *testing.T) {
	if got := metrics.Degrees(nil); got != nil {
		t.Errorf("Degrees(nil) = %v; want nil", got)
	}
	if got := metrics.SecondHop(nil); got != nil {
		t.Errorf("SecondHop(nil) = %v; want nil", got)
	}
	if got := metrics.Components(nil); got != nil {
		t.Errorf("Components(nil) = %v; want nil", got)
	}
	if got := metrics.DegreeDistribution(nil); len(got) != 0 {
		t.Errorf("DegreeDistribution(nil) = %v; want empty", got)
	}

	empty := core.NewGraph()
	if got := metrics.Degrees(empty); len(got) != 0 {
		t.Errorf("Degrees(empty) = %v", got)
	}
	if got := metrics.SecondHop(empty); len(got) != 0 {
		t.Errorf("SecondHop(empty) = %v", got)
	}
	if got := metrics.Components(empty); len(got) != 0 {
		t.Errorf("Components(empty) = %v", got)
	}
}

// TestMetrics_IsolatedAndSelfLoop: node 2 exists only through growth, node 4
// carries a self-loop that counts once toward degree and adds no second hop.
func TestMetrics_IsolatedAndSelfLoop(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {3, 4}, {4, 4}})
	if got, want := metrics.Degrees(g), []int{1, 1, 0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Degrees = %v; want %v", got, want)
	}
	if got, want := metrics.SecondHop(g), []int{0, 0, 0, 0, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("SecondHop = %v; want %v", got, want)
	}
	if got := metrics.DegreeDistribution(g)[0]; got != 1 {
		t.Errorf("isolated nodes under degree 0 = %d; want 1", got)
	}
}

func TestSecondHop_Path(t *testing.T) {
	// 0-1-2-3-4
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	if got, want := metrics.SecondHop(g), []int{1, 1, 2, 1, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("SecondHop = %v; want %v", got, want)
	}
}

// TestSecondHop_MatchesBFSDepthTwo checks the definition against an
// independent breadth-first search on random graphs.
func TestSecondHop_MatchesBFSDepthTwo(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		g := core.NewGraph()
		for i := 0; i < 90; i++ {
			_ = g.AddEdge(r.Intn(50), r.Intn(50))
		}
		got := metrics.SecondHop(g)
		adj := g.Adjacency()
		for v := range adj {
			res, err := bfs.Run(adj, v, bfs.WithMaxDepth(2))
			if err != nil {
				t.Fatal(err)
			}
			want := 0
			for _, d := range res.Depth {
				if d == 2 {
					want++
				}
			}
			if got[v] != want {
				t.Fatalf("seed %d node %d: SecondHop = %d; bfs depth-2 count = %d", seed, v, got[v], want)
			}
		}
	}
}

func TestComponents(t *testing.T) {
	// {0,1,5}, {2}, {3,4}, {6} with 6 only via self-loop
	g := buildGraph(t, [][2]int{{5, 1}, {1, 0}, {4, 3}, {6, 6}})
	comps := metrics.Components(g)
	want := [][]int{{0, 1, 5}, {2}, {3, 4}, {6}}
	if len(comps) != len(want) {
		t.Fatalf("got %d components; want %d", len(comps), len(want))
	}
	for i, c := range comps {
		if !reflect.DeepEqual(c.Nodes, want[i]) {
			t.Errorf("component %d = %v; want %v", i, c.Nodes, want[i])
		}
	}
	if got := metrics.Largest(comps); got != 3 {
		t.Errorf("Largest = %d; want 3", got)
	}
	if got := metrics.Largest(nil); got != 0 {
		t.Errorf("Largest(nil) = %d; want 0", got)
	}
}

func TestComponents_CoverEveryNodeOnce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := core.NewGraph()
	for i := 0; i < 60; i++ {
		_ = g.AddEdge(r.Intn(80), r.Intn(80))
	}
	seen := make(map[int]bool)
	total := 0
	for _, c := range metrics.Components(g) {
		total += c.Size()
		for _, v := range c.Nodes {
			if seen[v] {
				t.Fatalf("node %d appears in two components", v)
			}
			seen[v] = true
		}
	}
	if total != g.NodeCount() {
		t.Errorf("components cover %d nodes; graph has %d", total, g.NodeCount())
	}
}
