package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCommand_WritesInstance(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	cmd := newGenerateCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--capacity", "100", "--items", "6", "--classes", "3", "--seed", "7", "--out-dir", dir})
	require.NoError(t, cmd.Execute())

	want := filepath.Join(dir, "hardness_halfcap_sorted_n6_B100_classes3_seed13.lp")
	assert.FileExists(t, want)
	assert.Contains(t, buf.String(), want)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Minimize")
	assert.Contains(t, string(data), "Binary")
}

func TestGenerateCommand_RequiresParams(t *testing.T) {
	cmd := newGenerateCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--capacity", "100"})

	assert.Error(t, cmd.Execute())
}

func TestGenerateCommand_RejectsBadParams(t *testing.T) {
	cmd := newGenerateCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--capacity", "1", "--items", "5", "--classes", "3", "--seed", "1", "--out-dir", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")
}
