// SPDX-License-Identifier: MIT
// Package: hopgraph/builder
//
// kinds.go: name-based lookup of topology constructors for the CLI.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// Params carries the numeric arguments of every named topology. Each kind
// reads only the fields it needs.
type Params struct {
	N    int     // node count: path, cycle, star, wheel, complete, random
	Rows int     // grid
	Cols int     // grid
	P    float64 // edge probability: random
}

var kinds = map[string]func(Params) Constructor{
	"path":     func(p Params) Constructor { return Path(p.N) },
	"cycle":    func(p Params) Constructor { return Cycle(p.N) },
	"star":     func(p Params) Constructor { return Star(p.N) },
	"wheel":    func(p Params) Constructor { return Wheel(p.N) },
	"complete": func(p Params) Constructor { return Complete(p.N) },
	"grid":     func(p Params) Constructor { return Grid(p.Rows, p.Cols) },
	"random":   func(p Params) Constructor { return RandomSparse(p.N, p.P) },
}

// Kinds returns the known topology names in ascending order.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByName resolves a topology name (case-insensitive) to its Constructor.
// Parameter validation happens when the constructor runs.
func ByName(kind string, p Params) (Constructor, error) {
	mk, ok := kinds[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownKind, kind, strings.Join(Kinds(), ", "))
	}

	return mk(p), nil
}
