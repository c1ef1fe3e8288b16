// Package report ranks per-node values and renders analysis results.
//
// TopN and TopNSlice order entries by value descending with ties broken by
// ascending node index, so rankings are stable across runs. Ascending lists
// a histogram by key.
//
// A Report is a title, an ordered summary of named statistics, and sections
// of (node, value) entries. Render writes it as an aligned text table, JSON,
// YAML or TOML; the structured formats carry the same fields under the same
// snake_case names.
package report
