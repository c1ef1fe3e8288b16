package edgelist_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/hopgraph/edgelist"
)

// ExampleRead parses a commented edge list and writes it back canonically.
func ExampleRead() {
	in := "# triangle plus tail\n1 0\n1 2\n2 0\n\n2 3\n"
	g, err := edgelist.Read(strings.NewReader(in))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.NodeCount(), g.EdgeCount())
	_ = edgelist.Write(os.Stdout, g)
	// Output:
	// 4 4
	// 0 1
	// 0 2
	// 1 2
	// 2 3
}
