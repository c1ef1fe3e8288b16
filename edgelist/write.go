// SPDX-License-Identifier: MIT
//
// File: write.go
// Role: canonical edge-list serialization.

package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/hopgraph/core"
)

// ErrNilGraph is returned by Write for a nil graph.
var ErrNilGraph = errors.New("edgelist: graph is nil")

// Write emits one "a b" line per g.Edges() entry, in that order.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, e := range g.Edges() {
		buf = strconv.AppendInt(buf[:0], int64(e.From), 10)
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.To), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("edgelist: write: %w", err)
	}

	return nil
}

// Save writes g to path, creating or truncating it.
func Save(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("edgelist: close: %w", cerr)
		}
	}()

	return Write(f, g)
}
