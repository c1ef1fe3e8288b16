package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects a Render output encoding.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// Formats lists every supported format name.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat maps a case-insensitive name to a Format. "yml" is accepted
// as an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Stat is one named summary statistic, already formatted.
type Stat struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Section is one ranked list.
type Section struct {
	Title string `json:"title" yaml:"title" toml:"title"`
	// Key and Metric name the two table columns; Key defaults to "node".
	Key     string  `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Metric  string  `json:"metric" yaml:"metric" toml:"metric"`
	Integer bool    `json:"integer,omitempty" yaml:"integer,omitempty" toml:"integer,omitempty"`
	Entries []Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// Report is the rendered outcome of one analysis run.
type Report struct {
	Title    string    `json:"title" yaml:"title" toml:"title"`
	Summary  []Stat    `json:"summary" yaml:"summary" toml:"summary"`
	Sections []Section `json:"sections" yaml:"sections" toml:"sections"`
}

// AddStat appends a summary statistic formatted with %v.
func (r *Report) AddStat(name string, value any) {
	r.Summary = append(r.Summary, Stat{Name: name, Value: fmt.Sprint(value)})
}

// Render writes rep to w in the given format.
func Render(w io.Writer, rep *Report, f Format) error {
	if rep == nil {
		return errors.New("report: nil report")
	}
	if f == FormatTable {
		if err := renderTable(w, rep); err != nil {
			return fmt.Errorf("report: render %s: %w", f, err)
		}
		return nil
	}

	return Encode(w, rep, f)
}

// Encode writes v in one of the structured formats (json, yaml, toml). TOML
// needs v to be a struct or map at the top level.
func Encode(w io.Writer, v any, f Format) error {
	var err error
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("report: render %s: %w", f, err)
	}

	return nil
}

func renderTable(w io.Writer, rep *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if rep.Title != "" {
		fmt.Fprintln(tw, rep.Title)
		fmt.Fprintln(tw, strings.Repeat("=", len(rep.Title)))
	}
	for _, s := range rep.Summary {
		fmt.Fprintf(tw, "%s:\t%s\n", s.Name, s.Value)
	}
	for _, sec := range rep.Sections {
		key := sec.Key
		if key == "" {
			key = "node"
		}
		fmt.Fprintf(tw, "\n%s\n", sec.Title)
		fmt.Fprintf(tw, "%s\t%s\n", strings.ToUpper(key), strings.ToUpper(sec.Metric))
		for _, e := range sec.Entries {
			fmt.Fprintf(tw, "%d\t%s\n", e.Node, formatValue(e.Value, sec.Integer))
		}
	}

	return tw.Flush()
}

func formatValue(v float64, integer bool) string {
	if integer && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(v, 'f', 6, 64)
}
