// Package models defines the data types shared across milpbench's
// extraction pipeline.
package models

// Status is the terminal solver status recognized in a transcript.
// The values are the literal phrases emitted by the solver so that
// downstream spreadsheets match the raw logs.
type Status string

const (
	// StatusTimeLimit means the solver stopped at its time limit.
	StatusTimeLimit Status = "Time limit reached"
	// StatusOptimal means the solver proved optimality.
	StatusOptimal Status = "Optimal solution found"
	// StatusUnknown means neither phrase appeared in the transcript.
	StatusUnknown Status = ""
)

// ExtractionRecord holds the metrics extracted from one solver transcript.
// Every field is optional; an absent value is the empty string and is
// written as an empty CSV cell. All numeric values are kept as the exact
// text matched in the transcript, never re-parsed or re-formatted.
type ExtractionRecord struct {
	// Filename identifies the source transcript. Assigned by the batch
	// driver, not by the scanner.
	Filename string

	Status Status

	// Objective is populated only when the solver reported a gap of
	// exactly 0.0000% on the same "Best objective" line.
	Objective string

	// Gap is the percentage from the last "Best objective ..., best
	// bound ..., gap ...%" line, e.g. "0.0000%".
	Gap string

	// WorkUnits, RuntimeSeconds, SimplexIters and Nodes come from the
	// last "Explored ..." summary line and are always set together.
	WorkUnits      string
	RuntimeSeconds string
	SimplexIters   string
	Nodes          string

	// InitialGap is the gap column of the first data row of the
	// branch-and-bound progress table, e.g. "100%". Captured at most
	// once per transcript.
	InitialGap string
}

// Columns returns the CSV header in the fixed output order.
func Columns() []string {
	return []string{
		"filename",
		"status",
		"objective",
		"gap",
		"work_units",
		"runtime_seconds",
		"initial_gap",
		"simplex_iters",
		"nodes",
	}
}

// Values returns the record's fields in the same order as Columns.
func (r *ExtractionRecord) Values() []string {
	return []string{
		r.Filename,
		string(r.Status),
		r.Objective,
		r.Gap,
		r.WorkUnits,
		r.RuntimeSeconds,
		r.InitialGap,
		r.SimplexIters,
		r.Nodes,
	}
}

// Empty reports whether no recognizer matched anything in the transcript.
// The filename does not count: it is assigned by the driver.
func (r *ExtractionRecord) Empty() bool {
	return r.Status == StatusUnknown &&
		r.Objective == "" &&
		r.Gap == "" &&
		r.WorkUnits == "" &&
		r.RuntimeSeconds == "" &&
		r.SimplexIters == "" &&
		r.Nodes == "" &&
		r.InitialGap == ""
}
