// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: Graphviz DOT export.

package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/hopgraph/core"
)

// ErrNilGraph is returned when WriteDOT receives a nil graph.
var ErrNilGraph = errors.New("converters: graph is nil")

// DefaultGraphName is the DOT graph identifier when none is set.
const DefaultGraphName = "G"

// DOTOption customizes WriteDOT.
type DOTOption func(*dotOptions)

type dotOptions struct {
	name  string
	label func(v int) string
	attrs func(v int) map[string]string
	all   bool
}

// WithGraphName sets the graph identifier. Names that are not plain DOT IDs
// are quoted.
func WithGraphName(name string) DOTOption {
	return func(o *dotOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithNodeLabel sets a label attribute per node. Returning "" omits it.
func WithNodeLabel(fn func(v int) string) DOTOption {
	return func(o *dotOptions) {
		o.label = fn
	}
}

// WithNodeAttrs adds arbitrary attributes per node, emitted in key order.
// Typical use: size or color nodes by a centrality score.
func WithNodeAttrs(fn func(v int) map[string]string) DOTOption {
	return func(o *dotOptions) {
		o.attrs = fn
	}
}

// WithAllNodes declares every node, not only isolated or decorated ones.
func WithAllNodes() DOTOption {
	return func(o *dotOptions) {
		o.all = true
	}
}

// WriteDOT writes g as an undirected DOT graph:
//
//	graph G {
//	  2;
//	  0 -- 1;
//	}
//
// Node statements come first, in ascending index order, for isolated nodes
// (which would otherwise vanish), nodes with attributes, and all nodes under
// WithAllNodes. Edge statements follow in g.Edges() order.
func WriteDOT(w io.Writer, g *core.Graph, opts ...DOTOption) error {
	if g == nil {
		return ErrNilGraph
	}
	o := dotOptions{name: DefaultGraphName}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s {\n", quoteID(o.name))
	for v := 0; v < g.NodeCount(); v++ {
		attrs := nodeAttrs(o, v)
		if len(attrs) == 0 && !o.all && g.Degree(v) > 0 {
			continue
		}
		fmt.Fprintf(bw, "  %d%s;\n", v, attrs)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  %d -- %d;\n", e.From, e.To)
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("converters: write dot: %w", err)
	}

	return nil
}

// nodeAttrs renders " [k=v, ...]" or "" when v has no attributes.
func nodeAttrs(o dotOptions, v int) string {
	kv := make(map[string]string)
	if o.attrs != nil {
		for k, val := range o.attrs(v) {
			kv[k] = val
		}
	}
	if o.label != nil {
		if l := o.label(v); l != "" {
			kv["label"] = l
		}
	}
	if len(kv) == 0 {
		return ""
	}

	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = quoteID(k) + "=" + quoteID(kv[k])
	}

	return " [" + strings.Join(parts, ", ") + "]"
}

var plainID = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*|-?(\.[0-9]+|[0-9]+(\.[0-9]*)?))$`)

// quoteID returns s unchanged when it is a bare DOT identifier or numeral,
// otherwise as a double-quoted string.
func quoteID(s string) string {
	if plainID.MatchString(s) {
		return s
	}

	return strconv.Quote(s)
}
