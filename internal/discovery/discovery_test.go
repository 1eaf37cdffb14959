package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
}

func TestTranscriptsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.log")
	writeFile(t, path)

	// A direct file path is accepted even when its suffix differs.
	got, err := Transcripts(path, ".out")
	require.NoError(t, err)
	assert.Equal(t, []string{path}, got)
}

func TestTranscriptsDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.out"))
	writeFile(t, filepath.Join(dir, "a.out"))
	writeFile(t, filepath.Join(dir, "c.out.gz"))
	writeFile(t, filepath.Join(dir, "notes.txt"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested.out"), 0o755))

	got, err := Transcripts(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.out"),
		filepath.Join(dir, "b.out"),
		filepath.Join(dir, "c.out.gz"),
	}, got)
}

func TestTranscriptsCustomSuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "run.log"))
	writeFile(t, filepath.Join(dir, "run.out"))

	got, err := Transcripts(dir, ".log")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "run.log")}, got)
}

func TestTranscriptsEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.txt"))

	_, err := Transcripts(dir, ".out")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTranscripts)
}

func TestTranscriptsMissingPath(t *testing.T) {
	_, err := Transcripts(filepath.Join(t.TempDir(), "absent"), ".out")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoTranscripts)
}
