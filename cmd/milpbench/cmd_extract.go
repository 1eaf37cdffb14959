package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/optkit/milpbench/internal/batch"
	"github.com/optkit/milpbench/internal/discovery"
	"github.com/optkit/milpbench/internal/projectconfig"
	"github.com/optkit/milpbench/internal/reporting"
)

func newExtractCommand() *cobra.Command {
	var (
		in      string
		out     string
		suffix  string
		workers int
		summary bool
		quiet   bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract solver metrics from transcripts into a CSV",
		Long: `Extract performance metrics from solver transcripts into a CSV table.

Reads a single transcript file or every transcript in a directory and
writes one CSV row per transcript: terminal status, final objective and
gap, node/iteration/runtime/work-unit counts from the explored summary,
and the initial gap from the first row of the progress table.

A transcript with no recognizable lines yields an empty row, not an
error; an input directory with no transcripts at all is fatal and no
output file is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return extractCommandE(cmd, in, out, suffix, workers, summary, quiet)
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Transcript file or directory (default from .milpbench.yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output CSV path (default from .milpbench.yaml)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Transcript filename suffix (default \".out\")")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent transcript scans")
	cmd.Flags().BoolVar(&summary, "summary", false, "Print a summary table after writing the CSV")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the final status line")

	return cmd
}

func extractCommandE(cmd *cobra.Command, in, out, suffix string, workers int, summary, quiet bool) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	if in == "" {
		in = cfg.Paths.Transcripts
	}
	if out == "" {
		out = cfg.Paths.Results
	}
	if suffix == "" {
		suffix = cfg.Extract.Suffix
	}
	if workers <= 0 {
		workers = cfg.Extract.Workers
	}
	if !summary && cfg.Extract.Summary != nil {
		summary = *cfg.Extract.Summary
	}

	paths, err := discovery.Transcripts(in, suffix)
	if err != nil {
		return err
	}
	slog.Debug("discovered transcripts", "count", len(paths), "in", in, "suffix", suffix)

	runner := batch.NewRunner(workers)
	runner.OnProgress(func(ev batch.Event) {
		slog.Debug("scanned transcript", "path", ev.Path, "done", ev.Index+1, "total", ev.Total, "empty", ev.Empty)
	})

	records, err := runner.Scan(cmd.Context(), paths)
	if err != nil {
		return err
	}

	if err := reporting.WriteCSV(out, records); err != nil {
		return err
	}

	if summary {
		reporting.WriteSummaryTable(cmd.OutOrStdout(), records)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d transcript(s))\n", out, len(records)) //nolint:errcheck
	}
	return nil
}
