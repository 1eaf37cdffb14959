// Package scanner extracts solver metrics from one transcript in a
// single top-to-bottom pass.
//
// Two rules govern precedence: the "Time limit reached" status always
// wins over "Optimal solution found" no matter where either phrase
// appears, and for the repeated summary lines (best objective, explored
// nodes) the last occurrence in the file is authoritative. The initial
// gap is the exception: it is captured at most once, from the first data
// row following the progress-table header.
package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/optkit/milpbench/internal/models"
)

// maxLineBytes bounds a single transcript line. Solver logs occasionally
// print very wide rows for dense models.
const maxLineBytes = 1024 * 1024

// Scan reads one transcript and returns its extraction record. A
// transcript in which nothing matches yields an all-empty record and a
// nil error; the scanner holds no state between calls.
func Scan(r io.Reader) (models.ExtractionRecord, error) {
	var rec models.ExtractionRecord
	gap := newGapTracker()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		line := sc.Text()
		scanLine(line, &rec)
		gap.observe(line)
	}
	if err := sc.Err(); err != nil {
		return models.ExtractionRecord{}, fmt.Errorf("reading transcript: %w", err)
	}

	rec.InitialGap = gap.value
	return rec, nil
}

// scanLine runs the position-independent recognizers against one line,
// mutating rec in place.
func scanLine(line string, rec *models.ExtractionRecord) {
	// Status. Time limit takes precedence once seen; the optimal phrase
	// only fills an unset status.
	if rec.Status != models.StatusTimeLimit {
		if reTimeLimit.MatchString(line) {
			rec.Status = models.StatusTimeLimit
		} else if rec.Status == models.StatusUnknown && reOptimal.MatchString(line) {
			rec.Status = models.StatusOptimal
		}
	}

	// Best objective / gap. Later lines overwrite earlier ones. The
	// objective is only trusted when the same line reports a zero gap;
	// otherwise any previously captured objective is cleared.
	if m := reBestLine.FindStringSubmatch(line); m != nil {
		rec.Gap = m[3] + "%"
		if m[3] == zeroGap {
			rec.Objective = m[1]
		} else {
			rec.Objective = ""
		}
	}

	// Explored summary. A single match populates all four fields, so a
	// partial overwrite cannot occur.
	if m := reExplored.FindStringSubmatch(line); m != nil {
		rec.Nodes = m[1]
		rec.SimplexIters = m[2]
		rec.RuntimeSeconds = m[3]
		rec.WorkUnits = m[4]
	}
}

// gapPhase is the state of the initial-gap automaton. Transitions are
// forward-only: seekingHeader -> afterHeader -> gapDone.
type gapPhase int

const (
	seekingHeader gapPhase = iota
	afterHeader
	gapDone
)

// gapTracker locates the first genuine data row after the progress-table
// header and records its gap column.
type gapTracker struct {
	phase gapPhase
	value string
}

func newGapTracker() *gapTracker {
	return &gapTracker{phase: seekingHeader}
}

// observe feeds one line to the automaton.
func (g *gapTracker) observe(line string) {
	switch g.phase {
	case seekingHeader:
		if reTableHeader.MatchString(line) {
			g.phase = afterHeader
		}
	case afterHeader:
		s := strings.TrimSpace(line)
		if s == "" || isSeparator(s) {
			return
		}
		if !reProgressRow.MatchString(s) {
			return
		}
		// The gap column prints as a percent; the row may carry other
		// percent-shaped tokens, so take the last one.
		if percents := rePercent.FindAllString(s, -1); len(percents) > 0 {
			g.value = percents[len(percents)-1]
		}
		g.phase = gapDone
	case gapDone:
		// Immutable once captured.
	}
}

// isSeparator reports whether a trimmed line is a table rule such as
// "----" or "|====|".
func isSeparator(s string) bool {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case '|', '-', '=', ' ', '\t':
			return -1
		}
		return r
	}, s)
	return stripped == ""
}
