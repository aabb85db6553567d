// Command metrosim runs a minute-resolution metro network simulation from
// a YAML network definition and optionally writes a CSV end-of-run report.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/FilippoRanza/metrosim/internal/config"
	"github.com/FilippoRanza/metrosim/internal/engine"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "metrosim",
		Short: "Minute-resolution urban metro network simulator",
	}
	root.AddCommand(newRunCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var (
		configPath string
		steps      int
		seed       int64
		reportPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation from a network definition file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd.Context(), runOptions{
				configPath: configPath,
				steps:      steps,
				seed:       seed,
				reportPath: reportPath,
				verbose:    verbose,
			})
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the YAML network definition (required)")
	cmd.Flags().IntVar(&steps, "steps", 0, "override the number of simulation steps (0 keeps the config's own value)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the traffic generator's random seed (0 keeps the config's own value)")
	cmd.Flags().StringVar(&reportPath, "report", "", "if set, write a CSV summary report to this path")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level step logging")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

type runOptions struct {
	configPath string
	steps      int
	seed       int64
	reportPath string
	verbose    bool
}

func runSimulation(ctx context.Context, opts runOptions) error {
	log := logrus.New()
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	f, err := os.Open(opts.configPath)
	if err != nil {
		return fmt.Errorf("open network config: %w", err)
	}
	defer f.Close()

	cfg, err := config.LoadNetworkConfigFromReader(f)
	if err != nil {
		return fmt.Errorf("load network config: %w", err)
	}
	if opts.steps > 0 {
		cfg.Steps = opts.steps
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	network := config.Build(cfg)
	eng := engine.New(network, log)

	report, err := eng.Run(ctx)
	if err != nil {
		return fmt.Errorf("run simulation: %w", err)
	}

	if opts.reportPath != "" {
		if err := writeReport(report, opts.reportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.WithField("path", opts.reportPath).Info("report written")
	}

	return nil
}

func writeReport(report *engine.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteCSV(f)
}
