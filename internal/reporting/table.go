package reporting

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/optkit/milpbench/internal/metrics"
	"github.com/optkit/milpbench/internal/models"
)

const maxFilenameWidth = 40

// WriteSummaryTable prints a human-readable overview of the batch:
// one line per transcript with status, final gap and runtime, plus a
// trailing count of transcripts that matched nothing.
func WriteSummaryTable(w io.Writer, records []models.ExtractionRecord) {
	nameWidth := len("FILE")
	for i := range records {
		if n := runewidth.StringWidth(records[i].Filename); n > nameWidth {
			nameWidth = n
		}
	}
	if nameWidth > maxFilenameWidth {
		nameWidth = maxFilenameWidth
	}

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("FILE", nameWidth),
		padRight("STATUS", 22),
		padRight("GAP", 9),
		padRight("RUNTIME", 9),
		"NODES")

	empty := 0
	for i := range records {
		r := &records[i]
		if r.Empty() {
			empty++
		}
		status := string(r.Status)
		if status == "" {
			status = "-"
		}
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
			padRight(truncateName(r.Filename, maxFilenameWidth), nameWidth),
			padRight(status, 22),
			padRight(orDash(r.Gap), 9),
			padRight(orDash(r.RuntimeSeconds), 9),
			orDash(r.Nodes))
	}

	fmt.Fprintf(w, "\n%d transcript(s), %d with no recognized lines\n", len(records), empty) //nolint:errcheck

	if runtimes := parsedRuntimes(records); len(runtimes) > 0 {
		fmt.Fprintf(w, "runtime: mean %.2fs, max %.2fs over %d timed transcript(s)\n", //nolint:errcheck
			metrics.Mean(runtimes), metrics.Max(runtimes), len(runtimes))
	}
}

// parsedRuntimes collects the runtimes that parse as floats. Records
// keep runtimes as raw transcript text, so unparsable values are simply
// left out of the aggregate.
func parsedRuntimes(records []models.ExtractionRecord) []float64 {
	var out []float64
	for i := range records {
		if records[i].RuntimeSeconds == "" {
			continue
		}
		if v, err := strconv.ParseFloat(records[i].RuntimeSeconds, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// truncateName shortens a name to maxLen runes, replacing the last rune
// with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
