package splice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseLP = `\ test model
Minimize
 obj: y_0 + y_1
Subject To
 assign_0: x_0_0 + x_0_1 = 1
Binary
 y_0
 y_1
End
`

func setup(t *testing.T) (base string, snippets string, out string) {
	t.Helper()
	dir := t.TempDir()
	base = filepath.Join(dir, "base.lp")
	require.NoError(t, os.WriteFile(base, []byte(baseLP), 0o644))
	snippets = filepath.Join(dir, "sbs")
	require.NoError(t, os.MkdirAll(snippets, 0o755))
	out = filepath.Join(dir, "gen")
	return base, snippets, out
}

func TestRunInsertsBeforeBinary(t *testing.T) {
	base, snippets, out := setup(t)
	snippet := "Subject To\n\\ a comment\n sb_0: y_0 - y_1 >= 0\n\n sb_1: x_0_0 - x_0_1 >= 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(snippets, "lex.txt"), []byte(snippet), 0o644))

	written, err := Run(Options{BasePath: base, SnippetsDir: snippets, OutDir: out})
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, filepath.Join(out, "lex.lp"), written[0])

	data, err := os.ReadFile(written[0])
	require.NoError(t, err)
	text := string(data)

	// Constraints land between the base constraints and the Binary header,
	// with the snippet's header and comments stripped.
	assert.NotContains(t, text, "a comment")
	assert.Equal(t, 1, strings.Count(text, "Subject To"))
	binaryAt := strings.Index(text, "Binary")
	sb0At := strings.Index(text, "sb_0:")
	sb1At := strings.Index(text, "sb_1:")
	assignAt := strings.Index(text, "assign_0:")
	require.True(t, binaryAt > 0 && sb0At > 0 && sb1At > 0 && assignAt > 0)
	assert.Less(t, assignAt, sb0At)
	assert.Less(t, sb0At, sb1At)
	assert.Less(t, sb1At, binaryAt)
}

func TestRunMultipleSnippetsSorted(t *testing.T) {
	base, snippets, out := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(snippets, "b.txt"), []byte(" c1: y_0 >= 0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(snippets, "a.txt"), []byte(" c2: y_1 >= 0\n"), 0o644))

	written, err := Run(Options{BasePath: base, SnippetsDir: snippets, OutDir: out})
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, "a.lp", filepath.Base(written[0]))
	assert.Equal(t, "b.lp", filepath.Base(written[1]))
}

func TestRunNameSuffixAndPattern(t *testing.T) {
	base, snippets, out := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(snippets, "nl_1.txt"), []byte(" c: y_0 >= 0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(snippets, "other.dat"), []byte(" d: y_1 >= 0\n"), 0o644))

	written, err := Run(Options{
		BasePath:    base,
		SnippetsDir: snippets,
		OutDir:      out,
		Pattern:     "nl_*",
		NameSuffix:  "_nonlin",
	})
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "nl_1_nonlin.lp", filepath.Base(written[0]))
}

func TestRunNoBinarySection(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.lp")
	require.NoError(t, os.WriteFile(base, []byte("Minimize\n obj: y_0\nEnd\n"), 0o644))
	snippets := filepath.Join(dir, "sbs")
	require.NoError(t, os.MkdirAll(snippets, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(snippets, "a.txt"), []byte(" c: y_0 >= 0\n"), 0o644))

	_, err := Run(Options{BasePath: base, SnippetsDir: snippets, OutDir: filepath.Join(dir, "gen")})
	assert.ErrorIs(t, err, ErrNoBinarySection)
}

func TestRunNoSnippets(t *testing.T) {
	base, snippets, out := setup(t)

	_, err := Run(Options{BasePath: base, SnippetsDir: snippets, OutDir: out})
	assert.ErrorIs(t, err, ErrNoSnippets)
}

func TestRunMissingBase(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(Options{
		BasePath:    filepath.Join(dir, "absent.lp"),
		SnippetsDir: dir,
		OutDir:      dir,
	})
	assert.Error(t, err)
}
