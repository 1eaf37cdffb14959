// Package splice inserts constraint snippets into a base LP model.
//
// Each snippet file holds extra constraints (typically symmetry
// breakers). The snippet's constraint lines are inserted immediately
// before the base model's "Binary" section header, producing one
// augmented LP file per snippet.
package splice

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoBinarySection is returned when the base LP lacks a "Binary"
// section header, which is the splice anchor.
var ErrNoBinarySection = errors.New(`base LP has no "Binary" section header`)

// ErrNoSnippets is returned when the snippets directory matches no files.
var ErrNoSnippets = errors.New("no constraint snippet files found")

// Options controls a splice run.
type Options struct {
	BasePath    string
	SnippetsDir string
	OutDir      string
	Pattern     string // glob over snippet filenames; "*" when empty
	NameSuffix  string // appended to each output file stem, e.g. "_nonlin"
}

// Run splices every snippet into the base model and returns the output
// paths in the order written (snippet filename order).
func Run(opts Options) ([]string, error) {
	base, err := readLines(opts.BasePath)
	if err != nil {
		return nil, fmt.Errorf("base LP: %w", err)
	}

	insertAt := -1
	for i, ln := range base {
		if strings.EqualFold(strings.TrimSpace(ln), "binary") {
			insertAt = i
			break
		}
	}
	if insertAt < 0 {
		return nil, ErrNoBinarySection
	}

	snippets, err := snippetFiles(opts.SnippetsDir, opts.Pattern)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, snip := range snippets {
		block, err := constraintBlock(snip)
		if err != nil {
			return written, err
		}

		merged := make([]string, 0, len(base)+len(block))
		merged = append(merged, base[:insertAt]...)
		merged = append(merged, block...)
		merged = append(merged, base[insertAt:]...)

		stem := strings.TrimSuffix(filepath.Base(snip), filepath.Ext(snip))
		out := filepath.Join(opts.OutDir, stem+opts.NameSuffix+".lp")
		if err := os.WriteFile(out, []byte(strings.Join(merged, "\n")+"\n"), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}

// snippetFiles lists the snippet files matching pattern, sorted by name.
func snippetFiles(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("snippets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("snippets path %s is not a directory", dir)
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("snippet pattern %q: %w", pattern, err)
	}

	var files []string
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s (pattern %q)", ErrNoSnippets, dir, pattern)
	}
	sort.Strings(files)
	return files, nil
}

// constraintBlock extracts the constraint lines from one snippet file:
// an optional leading "Subject To" header is dropped, as are blank lines
// and "\" comments. A trailing blank line separates the block from the
// Binary header it lands in front of.
func constraintBlock(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("snippet: %w", err)
	}

	if len(lines) > 0 && strings.EqualFold(strings.TrimSpace(lines[0]), "subject to") {
		lines = lines[1:]
	}

	var block []string
	for _, ln := range lines {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		if strings.HasPrefix(strings.TrimLeft(ln, " \t"), `\`) {
			continue
		}
		block = append(block, strings.TrimRight(ln, "\r\n"))
	}
	block = append(block, "")
	return block, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	// Split leaves a phantom element after a trailing newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
