package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optkit/milpbench/internal/projectconfig"
	"github.com/optkit/milpbench/internal/validation"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milpbench",
		Short: "milpbench - batch tooling for MILP solver benchmarks",
		Long: `milpbench is a command-line toolkit for MILP benchmarking runs.

It generates bin-packing instances in LP format, splices constraint
snippets into base models, and extracts performance metrics from solver
transcripts into a single CSV summary.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		return checkProjectConfig()
	}

	// Add subcommands
	cmd.AddCommand(newExtractCommand())
	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newSpliceCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

// checkProjectConfig validates the nearest .milpbench.yaml, if any,
// against the embedded schema so that typos fail loudly instead of
// silently falling back to defaults.
func checkProjectConfig() error {
	path, ok := projectconfig.Find(".")
	if !ok {
		return nil
	}
	errs, err := validation.ValidateProjectFile(path)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid %s:\n  %s", path, strings.Join(errs, "\n  "))
	}
	return nil
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
