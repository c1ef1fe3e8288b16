// SPDX-License-Identifier: MIT
//
// File: read.go
// Role: line-oriented edge-list parsing into a core.Graph.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hopgraph/core"
)

// ErrMalformedLine is wrapped by every *ParseError.
var ErrMalformedLine = errors.New("edgelist: malformed line")

const (
	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20

	// DefaultMaxNode caps node indices; the dense node space allocates a
	// neighbor slice for every index up to the largest one seen.
	DefaultMaxNode = 1<<24 - 1
)

// ReadOption configures Read and Load.
type ReadOption func(*readOptions)

type readOptions struct {
	maxNode int
}

// WithMaxNode sets the largest accepted node index. Values < 0 are ignored.
func WithMaxNode(n int) ReadOption {
	return func(o *readOptions) {
		if n >= 0 {
			o.maxNode = n
		}
	}
}

// ParseError reports the first offending input line.
type ParseError struct {
	Line   int    // 1-based line number
	Text   string // the raw line
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap exposes ErrMalformedLine to errors.Is.
func (e *ParseError) Unwrap() error { return ErrMalformedLine }

// Read parses r into a new graph. I/O errors are returned wrapped; syntax
// errors are returned as *ParseError.
func Read(r io.Reader, opts ...ReadOption) (*core.Graph, error) {
	o := readOptions{maxNode: DefaultMaxNode}
	for _, opt := range opts {
		opt(&o)
	}
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		a, b, ok, err := parseLine(text, o.maxNode)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Reason: err.Error()}
		}
		if !ok {
			continue
		}
		if err = g.AddEdge(a, b); err != nil {
			return nil, &ParseError{Line: line, Text: text, Reason: err.Error()}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// Load opens path and parses it with Read.
func Load(path string, opts ...ReadOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open: %w", err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// parseLine returns ok=false for lines that carry no edge.
func parseLine(text string, maxNode int) (a, b int, ok bool, err error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '%' {
		return 0, 0, false, nil
	}
	fields := strings.Fields(trimmed)
	if len(fields) != 2 {
		return 0, 0, false, fmt.Errorf("want 2 fields, got %d", len(fields))
	}
	if a, err = parseNode(fields[0], maxNode); err != nil {
		return 0, 0, false, err
	}
	if b, err = parseNode(fields[1], maxNode); err != nil {
		return 0, 0, false, err
	}

	return a, b, true, nil
}

func parseNode(field string, maxNode int) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("bad node index %q", field)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative node index %d", v)
	}
	if v > maxNode {
		return 0, fmt.Errorf("node index %d exceeds limit %d", v, maxNode)
	}

	return v, nil
}
