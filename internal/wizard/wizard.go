// Package wizard collects project settings interactively for
// `milpbench init --interactive`.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/optkit/milpbench/internal/projectconfig"
)

// RunProjectWizard runs a huh form and returns the resulting project
// configuration, starting from the hard-coded defaults.
func RunProjectWizard(in io.Reader, out io.Writer) (*projectconfig.ProjectConfig, error) {
	cfg := projectconfig.New()

	var (
		transcripts = cfg.Paths.Transcripts
		results     = cfg.Paths.Results
		suffix      = cfg.Extract.Suffix
		workersRaw  = strconv.Itoa(cfg.Extract.Workers)
		summary     bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Transcript directory").
				Description("Where solver .out files are collected").
				Value(&transcripts),
			huh.NewInput().
				Title("Results file").
				Description("Path of the CSV written by milpbench extract").
				Value(&results),
			huh.NewInput().
				Title("Transcript suffix").
				Description("Filename extension of solver transcripts").
				Value(&suffix).
				Validate(func(s string) error {
					if !strings.HasPrefix(strings.TrimSpace(s), ".") {
						return fmt.Errorf("suffix must start with a dot, e.g. .out")
					}
					return nil
				}),
			huh.NewInput().
				Title("Workers").
				Description("Concurrent transcript scans").
				Value(&workersRaw).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("workers must be a positive integer")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Print summary table after extraction?").
				Value(&summary),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	cfg.Paths.Transcripts = strings.TrimSpace(transcripts)
	cfg.Paths.Results = strings.TrimSpace(results)
	cfg.Extract.Suffix = strings.TrimSpace(suffix)
	cfg.Extract.Workers, _ = strconv.Atoi(strings.TrimSpace(workersRaw))
	cfg.Extract.Summary = &summary
	return cfg, nil
}
