// Package dijkstra_test validates the unit-cost engine: distances, tie-aware
// predecessor lists, path reconstruction policies, totality on degenerate
// inputs and agreement with an independent breadth-first search.
package dijkstra_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
	"github.com/katalvlaran/hopgraph/dijkstra"
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

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil, 0); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("want ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := buildGraph(t, scenarioEdges)
	if _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(-1)); !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Errorf("want ErrBadMaxDistance, got %v", err)
	}
	if _, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTieBreak(dijkstra.TieBreak(7))); !errors.Is(err, dijkstra.ErrBadTieBreak) {
		t.Errorf("want ErrBadTieBreak, got %v", err)
	}
}

func TestParseTieBreak(t *testing.T) {
	cases := map[string]dijkstra.TieBreak{"": dijkstra.TieFirstDiscovered, "first": dijkstra.TieFirstDiscovered, "lowest": dijkstra.TieLowestIndex}
	for in, want := range cases {
		got, err := dijkstra.ParseTieBreak(in)
		if err != nil || got != want {
			t.Errorf("ParseTieBreak(%q) = %v, %v; want %v", in, got, err, want)
		}
		if in != "" && got.String() != in {
			t.Errorf("String() = %q; want %q", got.String(), in)
		}
	}
	if _, err := dijkstra.ParseTieBreak("random"); !errors.Is(err, dijkstra.ErrBadTieBreak) {
		t.Errorf("want ErrBadTieBreak, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestDijkstra_Scenario(t *testing.T) {
	g := buildGraph(t, scenarioEdges)
	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	wantDist := []int{0, 1, 1, 1, 2}
	if !reflect.DeepEqual(res.Dist, wantDist) {
		t.Errorf("Dist = %v; want %v", res.Dist, wantDist)
	}
	wantPaths := [][]int{{}, {0, 1}, {0, 2}, {0, 3}, {0, 2, 4}}
	if got := res.Paths(); !reflect.DeepEqual(got, wantPaths) {
		t.Errorf("Paths = %v; want %v", got, wantPaths)
	}
	// node 4 is reached from 2 first, then ties through 3
	if got, want := res.Predecessors(4), []int{2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Predecessors(4) = %v; want %v", got, want)
	}
	if got := res.Predecessors(0); len(got) != 0 {
		t.Errorf("source must have no predecessors, got %v", got)
	}
}

func TestDijkstra_DisconnectedWithSelfLoop(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {2, 2}})
	if g.Degree(2) != 1 {
		t.Fatalf("Degree(2) = %d; want 1", g.Degree(2))
	}
	res, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := res.Distance(2); ok || d != dijkstra.Unreachable {
		t.Errorf("Distance(2) = %d,%v; want Unreachable,false", d, ok)
	}
	if p := res.PathTo(2); len(p) != 0 {
		t.Errorf("PathTo(2) = %v; want empty", p)
	}
	if p := res.PathTo(1); !reflect.DeepEqual(p, []int{0, 1}) {
		t.Errorf("PathTo(1) = %v; want [0 1]", p)
	}

	// the looped node reaches nothing but itself
	res2, _ := dijkstra.Dijkstra(g, 2)
	if !reflect.DeepEqual(res2.Dist, []int{dijkstra.Unreachable, dijkstra.Unreachable, 0}) {
		t.Errorf("Dist from 2 = %v", res2.Dist)
	}
	if tr := res2.Triples(); len(tr) != 0 {
		t.Errorf("Triples from 2 = %v; want none", tr)
	}
}

func TestDijkstra_TieBreakPolicies(t *testing.T) {
	// 0 reaches 3 through 2 (inserted first) and through 1.
	g := buildGraph(t, [][2]int{{0, 2}, {0, 1}, {2, 3}, {1, 3}})

	first, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	lowest, err := dijkstra.Dijkstra(g, 0, dijkstra.WithTieBreak(dijkstra.TieLowestIndex))
	if err != nil {
		t.Fatal(err)
	}
	if got := first.Predecessors(3); !reflect.DeepEqual(got, []int{2, 1}) {
		t.Errorf("Predecessors(3) = %v; want [2 1]", got)
	}
	if got := first.PathTo(3); !reflect.DeepEqual(got, []int{0, 2, 3}) {
		t.Errorf("first-discovered PathTo(3) = %v; want [0 2 3]", got)
	}
	if got := lowest.PathTo(3); !reflect.DeepEqual(got, []int{0, 1, 3}) {
		t.Errorf("lowest-index PathTo(3) = %v; want [0 1 3]", got)
	}
	if !reflect.DeepEqual(first.Dist, lowest.Dist) {
		t.Errorf("distances differ across policies: %v vs %v", first.Dist, lowest.Dist)
	}
}

func TestDijkstra_LowestIndexIgnoresInsertionOrder(t *testing.T) {
	// Same edge set, two insertion orders: lowest-index paths must match.
	e1 := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {1, 5}, {2, 5}}
	e2 := [][2]int{{2, 5}, {2, 3}, {3, 4}, {1, 5}, {0, 2}, {1, 3}, {0, 1}}
	g1, g2 := buildGraph(t, e1), buildGraph(t, e2)
	opt := dijkstra.WithTieBreak(dijkstra.TieLowestIndex)
	for s := 0; s < g1.NodeCount(); s++ {
		r1, _ := dijkstra.Dijkstra(g1, s, opt)
		r2, _ := dijkstra.Dijkstra(g2, s, opt)
		if !reflect.DeepEqual(r1.Paths(), r2.Paths()) {
			t.Errorf("source %d: %v vs %v", s, r1.Paths(), r2.Paths())
		}
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res, err := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reachable(2) || res.Reachable(3) {
		t.Errorf("Dist = %v; want 2 reachable, 3 unreachable", res.Dist)
	}
	zero, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(0))
	if len(zero.Triples()) != 0 || !zero.Reachable(0) {
		t.Errorf("MaxDistance(0): Dist = %v", zero.Dist)
	}
}

// ------------------------------------------------------------------------
// 3. Totality
// ------------------------------------------------------------------------

func TestDijkstra_EmptyGraph(t *testing.T) {
	res, err := dijkstra.Dijkstra(core.NewGraph(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 0 || len(res.Triples()) != 0 {
		t.Errorf("empty graph result = %+v", res)
	}
	if p := res.PathTo(0); len(p) != 0 {
		t.Errorf("PathTo(0) = %v; want empty", p)
	}
}

func TestDijkstra_OutOfRangeSource(t *testing.T) {
	g := buildGraph(t, scenarioEdges)
	for _, src := range []int{-1, 5, 99} {
		res, err := dijkstra.Dijkstra(g, src)
		if err != nil {
			t.Fatalf("source %d: %v", src, err)
		}
		for v := 0; v < res.Len(); v++ {
			if res.Reachable(v) {
				t.Errorf("source %d: node %d reachable", src, v)
			}
			if p := res.PathTo(v); len(p) != 0 {
				t.Errorf("source %d: PathTo(%d) = %v", src, v, p)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Properties against an independent BFS
// ------------------------------------------------------------------------

func randomGraph(seed int64, n, m int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < m; i++ {
		_ = g.AddEdge(r.Intn(n), r.Intn(n))
	}

	return g
}

func TestDijkstra_MatchesBFS(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := randomGraph(seed, 40, 70)
		adj := g.Adjacency()
		for s := 0; s < len(adj); s++ {
			for _, tb := range []dijkstra.TieBreak{dijkstra.TieFirstDiscovered, dijkstra.TieLowestIndex} {
				res, err := dijkstra.Run(adj, s, dijkstra.WithTieBreak(tb))
				if err != nil {
					t.Fatal(err)
				}
				ref, err := bfs.Run(adj, s)
				if err != nil {
					t.Fatal(err)
				}
				checkAgainstBFS(t, g, res, ref)
				if tb != dijkstra.TieFirstDiscovered {
					continue
				}
				// first-discovered reconstruction follows the BFS tree
				for v := range adj {
					want, err := ref.PathTo(v)
					if err != nil || v == s {
						continue
					}
					if got := res.PathTo(v); !reflect.DeepEqual(got, want) {
						t.Fatalf("src %d: PathTo(%d) = %v; bfs tree gives %v", s, v, got, want)
					}
				}
			}
		}
	}
}

func checkAgainstBFS(t *testing.T, g *core.Graph, res *dijkstra.Result, ref *bfs.BFSResult) {
	t.Helper()
	s := res.Source
	for v := 0; v < res.Len(); v++ {
		want := ref.Depth[v]
		path := res.PathTo(v)
		switch {
		case want == bfs.Unreached:
			if res.Reachable(v) || len(path) != 0 {
				t.Fatalf("src %d: %d should be unreachable, dist=%d path=%v", s, v, res.Dist[v], path)
			}
		case v == s:
			if res.Dist[v] != 0 || len(path) != 0 {
				t.Fatalf("src %d: self dist=%d path=%v", s, res.Dist[v], path)
			}
		default:
			if res.Dist[v] != want {
				t.Fatalf("src %d: dist[%d] = %d; bfs says %d", s, v, res.Dist[v], want)
			}
			if path[0] != s || path[len(path)-1] != v || len(path)-1 != want {
				t.Fatalf("src %d: bad path to %d: %v (dist %d)", s, v, path, want)
			}
			for i := 1; i < len(path); i++ {
				if path[i] == path[i-1] {
					t.Fatalf("src %d: adjacent duplicate in %v", s, path)
				}
				if !g.HasEdge(path[i-1], path[i]) {
					t.Fatalf("src %d: %d-%d is not an edge in %v", s, path[i-1], path[i], path)
				}
			}
			for _, p := range res.Predecessors(v) {
				if res.Dist[p] != want-1 {
					t.Fatalf("src %d: predecessor %d of %d at dist %d", s, p, v, res.Dist[p])
				}
			}
		}
	}
}

func TestResult_Triples(t *testing.T) {
	g := buildGraph(t, scenarioEdges)
	res, _ := dijkstra.Dijkstra(g, 3)
	tr := res.Triples()
	if len(tr) != 4 {
		t.Fatalf("len(Triples) = %d; want 4", len(tr))
	}
	for i, x := range tr {
		if x.Source != 3 || x.Target == 3 {
			t.Errorf("triple %d = %+v", i, x)
		}
		if x.Path[0] != 3 || x.Path[len(x.Path)-1] != x.Target {
			t.Errorf("triple %d path = %v", i, x.Path)
		}
	}
}
