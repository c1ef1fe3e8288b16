package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hopgraph/builder"
	"github.com/katalvlaran/hopgraph/edgelist"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		params builder.Params
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Write a synthetic graph as an edge list",
		Long:  "Build a named topology and write it as an edge list.\nKinds: " + strings.Join(builder.Kinds(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, err := builder.ByName(args[0], params)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, con)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"kind":  args[0],
				"seed":  seed,
				"nodes": g.NodeCount(),
				"edges": g.EdgeCount(),
			}).Info("graph generated")

			if output == "" || output == "-" {
				return edgelist.Write(cmd.OutOrStdout(), g)
			}
			if err := edgelist.Save(output, g); err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&params.N, "nodes", "n", 10, "node count (path, cycle, star, wheel, complete, random)")
	f.IntVar(&params.Rows, "rows", 3, "grid rows")
	f.IntVar(&params.Cols, "cols", 3, "grid columns")
	f.Float64VarP(&params.P, "prob", "p", 0.1, "edge probability (random)")
	f.Int64Var(&seed, "seed", 1, "random seed (default: time based)")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
