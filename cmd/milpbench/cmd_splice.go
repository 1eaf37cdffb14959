package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/optkit/milpbench/internal/splice"
)

func newSpliceCommand() *cobra.Command {
	var opts splice.Options

	cmd := &cobra.Command{
		Use:   "splice",
		Short: "Splice constraint snippets into a base LP model",
		Long: `Splice constraint snippets (e.g. symmetry breakers) into a base LP.

Each snippet file's constraints are inserted immediately before the
base model's "Binary" section header, producing one augmented LP file
per snippet. A leading "Subject To" header and "\" comment lines in a
snippet are dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := splice.Run(opts)
			if err != nil {
				return err
			}
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote: %s\n", path) //nolint:errcheck
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.BasePath, "base", "", "Base LP file")
	cmd.Flags().StringVar(&opts.SnippetsDir, "snippets", "", "Directory of constraint snippet files")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "Output directory for augmented LP files")
	cmd.Flags().StringVar(&opts.Pattern, "pattern", "*", "Glob over snippet filenames")
	cmd.Flags().StringVar(&opts.NameSuffix, "name-suffix", "", "Suffix appended to each output file stem")

	for _, f := range []string{"base", "snippets", "out-dir"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
