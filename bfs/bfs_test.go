package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/hopgraph/bfs"
	"github.com/katalvlaran/hopgraph/core"
)

func buildGraph(t *testing.T, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := buildGraph(t, [][2]int{{0, 1}})
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_OutOfRangeSource is total: no error, nothing reached.
func TestBFS_OutOfRangeSource(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}})
	for _, src := range []int{-1, 2, 40} {
		res, err := bfs.BFS(g, src)
		if err != nil {
			t.Fatalf("BFS(%d): %v", src, err)
		}
		if len(res.Order) != 0 {
			t.Errorf("BFS(%d).Order = %v; want empty", src, res.Order)
		}
		for v := range res.Depth {
			if res.Reached(v) {
				t.Errorf("BFS(%d) reached %d", src, v)
			}
		}
	}
}

// TestBFS_EmptyGraph must not fail.
func TestBFS_EmptyGraph(t *testing.T) {
	res, err := bfs.BFS(core.NewGraph(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 0 || len(res.Depth) != 0 {
		t.Errorf("empty graph result = %+v", res)
	}
}

// TestBFS_ScenarioDepths covers the 5-node reference graph.
func TestBFS_ScenarioDepths(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 3}, {2, 3}, {2, 4}, {3, 4}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 1, 1, 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	path, err := res.PathTo(4)
	if err != nil {
		t.Fatal(err)
	}
	// 4 is first discovered from 2
	if want := []int{0, 2, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}
	if sum, n := res.DistanceSum(); sum != 5 || n != 4 {
		t.Errorf("DistanceSum = (%d,%d); want (5,4)", sum, n)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the source.
func TestBFS_Disconnected(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {2, 2}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("Order = %v; want [0 1]", res.Order)
	}
	if res.Reached(2) {
		t.Error("node 2 must be unreached")
	}
	if _, err := res.PathTo(2); err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo(2) err = %v; want no path", err)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	cases := []struct {
		depth int
		want  []int
	}{
		{1, []int{0, 1}},
		{2, []int{0, 1, 2}},
		{0, []int{0, 1, 2, 3}},
		{10, []int{0, 1, 2, 3}},
	}
	for _, c := range cases {
		res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(c.depth))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, c.want) {
			t.Errorf("MaxDepth=%d: Order = %v; want %v", c.depth, res.Order, c.want)
		}
	}
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 1}, {1, 2}})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("err = %v; want wrapped stop", err)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 100; i++ {
		_ = g.AddEdge(i, i+1)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestBFS_SelfLoop ensures a loop does not re-enqueue the node.
func TestBFS_SelfLoop(t *testing.T) {
	g := buildGraph(t, [][2]int{{0, 0}, {0, 1}})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}
