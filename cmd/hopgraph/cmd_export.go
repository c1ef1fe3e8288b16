package main

import (
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/converters"
	"github.com/katalvlaran/hopgraph/edgelist"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		output string
		name   string
		all    bool
		labels bool
	)
	cmd := &cobra.Command{
		Use:   "export <edge-list>",
		Short: "Convert an edge list to Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			g, err := edgelist.Load(args[0], edgelist.WithMaxNode(a.cfg.MaxNode))
			if err != nil {
				return err
			}

			opts := []converters.DOTOption{converters.WithGraphName(name)}
			if all {
				opts = append(opts, converters.WithAllNodes())
			}
			if labels {
				opts = append(opts, converters.WithNodeLabel(func(v int) string {
					return "n" + strconv.Itoa(v)
				}))
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, ferr := os.Create(output)
				if ferr != nil {
					return ferr
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}
			a.log.WithField("nodes", g.NodeCount()).WithField("edges", g.EdgeCount()).Debug("exporting dot")

			return converters.WriteDOT(w, g, opts...)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&name, "name", converters.DefaultGraphName, "graph name")
	f.BoolVar(&all, "all-nodes", false, "emit a statement for every node, not only isolated ones")
	f.BoolVar(&labels, "labels", false, "label nodes as n<index>")
	f.Int("max-node", edgelist.DefaultMaxNode, "largest node index accepted by the loader")

	return cmd
}
