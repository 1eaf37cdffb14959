// Package discovery resolves an input path into the list of transcript
// files to scan.
package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoTranscripts is returned when a directory exists but contains no
// eligible transcript files. Callers treat this as fatal: producing an
// empty results table would silently hide a misconfigured input path.
var ErrNoTranscripts = errors.New("no transcript files found")

// DefaultSuffix is the conventional extension for solver transcripts.
const DefaultSuffix = ".out"

// Transcripts returns the transcripts under in, in filename sort order
// for reproducible output.
//
// A regular file is taken as a single transcript regardless of suffix.
// A directory contributes every entry named *<suffix> or *<suffix>.gz;
// subdirectories are not descended into. An empty suffix falls back to
// DefaultSuffix.
func Transcripts(in string, suffix string) ([]string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	info, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("input path: %w", err)
	}

	if info.Mode().IsRegular() {
		return []string{in}, nil
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is neither a file nor a directory", in)
	}

	entries, err := os.ReadDir(in)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, suffix) || strings.HasSuffix(name, suffix+".gz") {
			paths = append(paths, filepath.Join(in, name))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s (suffix %q)", ErrNoTranscripts, in, suffix)
	}

	// ReadDir already sorts by filename; keep the explicit sort so the
	// ordering contract doesn't hinge on that implementation detail.
	sort.Strings(paths)
	return paths, nil
}
