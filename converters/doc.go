// Package converters provides export adapters from core.Graph to external
// graph formats.
//
//   - DOT (Graphviz): WriteDOT renders an undirected "graph" with one
//     "a -- b;" statement per edge, suitable for `dot`, `neato` or `sfdp`.
//
// Exporters are read-only over the graph and deterministic: the same graph
// and options always produce byte-identical output.
package converters
