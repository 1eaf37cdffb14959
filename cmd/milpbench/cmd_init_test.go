package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optkit/milpbench/internal/projectconfig"
)

func TestInitCommand_CreatesProjectStructure(t *testing.T) {
	target := filepath.Join(t.TempDir(), "bench")

	var buf bytes.Buffer
	cmd := newInitCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{target})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, projectconfig.ConfigFileName))
	assert.DirExists(t, filepath.Join(target, projectconfig.DefaultInstancesDir))
	assert.DirExists(t, filepath.Join(target, projectconfig.DefaultTranscriptsDir))
	assert.Contains(t, buf.String(), "Project initialized.")

	cfg, err := projectconfig.Load(target)
	require.NoError(t, err)
	assert.Equal(t, projectconfig.DefaultSuffix, cfg.Extract.Suffix)
}

func TestInitCommand_RefusesToOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "bench")
	require.NoError(t, os.MkdirAll(target, 0o755))
	existing := filepath.Join(target, projectconfig.ConfigFileName)
	require.NoError(t, os.WriteFile(existing, []byte("extract:\n  workers: 9\n"), 0o644))

	cmd := newInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{target})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The existing config is untouched.
	cfg, err := projectconfig.Load(target)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Extract.Workers)
}
