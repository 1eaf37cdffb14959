// Package reporting writes extraction results as CSV and renders the
// console summary table.
package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/optkit/milpbench/internal/models"
)

// WriteCSV writes one header row plus one row per record to path,
// creating parent directories as needed. Records are written in the
// order given; absent fields stay empty cells.
//
// Callers must only invoke this after the whole batch has been scanned:
// fatal input errors are reported before any output file exists.
func WriteCSV(path string, records []models.ExtractionRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := writeCSV(f, records); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeCSV(w io.Writer, records []models.ExtractionRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.Columns()); err != nil {
		return err
	}
	for i := range records {
		if err := cw.Write(records[i].Values()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
