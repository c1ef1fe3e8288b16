package report

import (
	"math"
	"sort"
)

// Number is any value type a ranking can be built from.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Entry is one ranked (node, value) pair. For histogram sections Node holds
// the bucket key.
type Entry struct {
	Node  int     `json:"node" yaml:"node" toml:"node"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
}

// TopN returns the n largest values of m, value descending, node ascending on
// ties. n <= 0 returns every entry. NaN values rank last.
func TopN[V Number](m map[int]V, n int) []Entry {
	entries := make([]Entry, 0, len(m))
	for node, v := range m {
		entries = append(entries, Entry{Node: node, Value: float64(v)})
	}

	return top(entries, n)
}

// TopNSlice is TopN over a dense slice indexed by node.
func TopNSlice[V Number](values []V, n int) []Entry {
	entries := make([]Entry, len(values))
	for node, v := range values {
		entries[node] = Entry{Node: node, Value: float64(v)}
	}

	return top(entries, n)
}

// Ascending lists m by key ascending, for histograms.
func Ascending[V Number](m map[int]V) []Entry {
	entries := make([]Entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry{Node: k, Value: float64(v)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Node < entries[j].Node })

	return entries
}

func top(entries []Entry, n int) []Entry {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		an, bn := math.IsNaN(a.Value), math.IsNaN(b.Value)
		switch {
		case an != bn:
			return bn
		case !an && a.Value != b.Value:
			return a.Value > b.Value
		default:
			return a.Node < b.Node
		}
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}

	return entries
}
