// Package edgelist reads and writes graphs in the plain edge-list text format:
// one undirected edge per line, two non-negative base-10 node indices
// separated by whitespace.
//
//	# SNAP-style header comments are skipped
//	0 1
//	0 2
//	% so are Matrix Market style ones
//	2	3
//
// Blank lines and lines whose first non-space character is '#' or '%' are
// ignored. Every other line must hold exactly two fields that parse as
// non-negative ints; anything else fails the whole load with a *ParseError
// wrapping ErrMalformedLine. No partial graph is ever returned. Indices above
// DefaultMaxNode (or WithMaxNode) are rejected the same way.
//
// Write emits the canonical form of a graph, one "a b" line per entry of
// core.Graph.Edges, so Read(Write(g)) reproduces g's edge set. Isolated
// nodes, having no edge, are not representable.
package edgelist
