// Command hopgraph analyzes undirected edge-list graphs: degrees, second-hop
// neighborhoods, components, approximate betweenness and closeness.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hopgraph/config"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("hopgraph version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("hopgraph version %s-dev", version)
}

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *logrus.Logger
}

// flagKeys maps CLI flag names onto config keys. Flags are bound only when
// the running command defines them.
var flagKeys = map[string]string{
	"top":          config.KeyTop,
	"format":       config.KeyFormat,
	"workers":      config.KeyWorkers,
	"closeness":    config.KeyCloseness,
	"tie-break":    config.KeyTieBreak,
	"log-level":    config.KeyLogLevel,
	"log-format":   config.KeyLogFormat,
	"dot":          config.KeyDOT,
	"metrics-file": config.KeyMetricsFile,
	"max-node":     config.KeyMaxNode,
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:     "hopgraph",
		Short:   "Structural analytics for undirected graphs",
		Long:    "hopgraph loads an edge list and reports degree, second-hop, component and shortest-path centrality metrics.",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default .hopgraph.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error (env: HOPGRAPH_LOG_LEVEL)")
	root.PersistentFlags().String("log-format", "text", "log format: text|json (env: HOPGRAPH_LOG_FORMAT)")

	root.AddCommand(newAnalyzeCmd(a))
	root.AddCommand(newPathsCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newGenerateCmd(a))

	return root
}

// setup resolves flags, config file and environment into a.cfg and builds
// the logger. Logs go to the command's error stream.
func (a *app) setup(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", name, err)
			}
		}
	}
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.NewLogger()
	a.log.SetOutput(cmd.ErrOrStderr())
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("config file loaded")
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
