package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optkit/milpbench/internal/projectconfig"
)

func TestCheckProjectConfig(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.NoError(t, checkProjectConfig())
	})

	t.Run("valid config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, projectconfig.ConfigFileName),
			[]byte("extract:\n  workers: 2\n"), 0o644))
		t.Chdir(dir)
		assert.NoError(t, checkProjectConfig())
	})

	t.Run("misspelled key is fatal", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, projectconfig.ConfigFileName),
			[]byte("extract:\n  sufix: .out\n"), 0o644))
		t.Chdir(dir)

		err := checkProjectConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), projectconfig.ConfigFileName)
	})
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "extract")
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "splice")
	assert.Contains(t, names, "init")
}
