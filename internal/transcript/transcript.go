// Package transcript opens solver transcript files for scanning.
//
// Transcripts are plain text, but archived runs are often stored
// gzip-compressed, and logs captured from remote machines occasionally
// carry garbled bytes. Open hides both: *.gz files are decompressed on
// the fly and malformed UTF-8 is replaced with U+FFFD so that a bad byte
// sequence never aborts a scan.
package transcript

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open returns a reader over the decoded text of the transcript at path.
// The caller must close it.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}

	var raw io.Reader = f
	closers := []io.Closer{f}

	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close() //nolint:errcheck
			return nil, fmt.Errorf("open gzip transcript %s: %w", path, err)
		}
		raw = zr
		closers = append([]io.Closer{zr}, closers...)
	}

	// The UTF-8 decoder substitutes invalid sequences instead of
	// erroring, which is exactly the recovery the scanner needs.
	decoded := transform.NewReader(raw, unicode.UTF8.NewDecoder())

	return &readCloser{Reader: decoded, closers: closers}, nil
}

// readCloser closes the gzip layer (when present) before the file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
