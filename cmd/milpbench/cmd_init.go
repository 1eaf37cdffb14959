package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/optkit/milpbench/internal/projectconfig"
	"github.com/optkit/milpbench/internal/wizard"
)

func newInitCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a milpbench project",
		Long: `Initialize a milpbench project directory.

Writes a .milpbench.yaml with default settings and creates the
instances and transcripts directories it refers to.

Use --interactive to run a guided form that collects the settings
instead of writing defaults.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Run guided setup")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, interactive bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, projectconfig.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := projectconfig.New()
	if interactive {
		wizardCfg, err := wizard.RunProjectWizard(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		cfg = wizardCfg
	}

	path, err := projectconfig.Save(dir, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", path) //nolint:errcheck

	for _, sub := range []string{cfg.Paths.Instances, cfg.Paths.Transcripts} {
		if sub == "" || filepath.IsAbs(sub) {
			continue
		}
		full := filepath.Join(dir, sub)
		if err := os.MkdirAll(full, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", full, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s%c\n", full, os.PathSeparator) //nolint:errcheck
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Project initialized.") //nolint:errcheck
	return nil
}
