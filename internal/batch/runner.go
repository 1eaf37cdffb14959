// Package batch scans many transcripts concurrently and collects their
// extraction records in a stable order.
package batch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/optkit/milpbench/internal/models"
	"github.com/optkit/milpbench/internal/scanner"
	"github.com/optkit/milpbench/internal/transcript"
)

// DefaultWorkers bounds concurrent scans when the caller does not choose.
const DefaultWorkers = 4

// Event reports one finished transcript scan.
type Event struct {
	Path  string
	Index int // position in the input slice
	Total int
	Empty bool // no recognizer matched anything
}

// ProgressListener receives an Event after each transcript completes.
type ProgressListener func(Event)

// Runner scans transcripts with a bounded worker pool. Each scan is
// isolated: all per-file state lives inside scanner.Scan, so files can
// be processed in parallel without shared mutable state.
type Runner struct {
	workers int

	mu        sync.Mutex
	listeners []ProgressListener
}

// NewRunner returns a Runner using the given worker count, or
// DefaultWorkers when workers is not positive.
func NewRunner(workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{workers: workers}
}

// OnProgress registers a progress listener.
func (r *Runner) OnProgress(l ProgressListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

func (r *Runner) notify(ev Event) {
	r.mu.Lock()
	listeners := r.listeners
	r.mu.Unlock()
	for _, l := range listeners {
		l(ev)
	}
}

// Scan processes every path and returns one record per path, in input
// order. A file that cannot be opened or read yields an all-empty record
// for that file rather than failing the batch; only context cancellation
// aborts the run.
func (r *Runner) Scan(ctx context.Context, paths []string) ([]models.ExtractionRecord, error) {
	records := make([]models.ExtractionRecord, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec := scanOne(path)
			rec.Filename = filepath.Base(path)
			records[i] = rec
			r.notify(Event{Path: path, Index: i, Total: len(paths), Empty: rec.Empty()})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// scanOne scans a single transcript, absorbing per-file failures into an
// empty record so one bad file never sinks the batch.
func scanOne(path string) models.ExtractionRecord {
	f, err := transcript.Open(path)
	if err != nil {
		slog.Warn("skipping unreadable transcript", "path", path, "error", err)
		return models.ExtractionRecord{}
	}
	defer f.Close() //nolint:errcheck

	rec, err := scanner.Scan(f)
	if err != nil {
		slog.Warn("transcript scan failed", "path", path, "error", err)
		return models.ExtractionRecord{}
	}
	return rec
}
