package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values persist between Execute calls; reset to defaults.
	configPath = ""
	verbose = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sorbet-lsp")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sorbet-lsp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ignore:\n  absolute:\n    - /vendor\n"), 0644))

	visible := filepath.Join(dir, "a.rb")
	ignored := filepath.Join(dir, "vendor", "b.rb")

	out, err := runCLI(t, "check", "--config", cfgPath, dir, visible, ignored)
	require.NoError(t, err)

	assert.Contains(t, out, "workspace root: "+dir)
	assert.Contains(t, out, visible+": file://")
	assert.Contains(t, out, ignored+": ignored")
}

func TestCheckCommand_FileOutsideWorkspace(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(t.TempDir(), "elsewhere.rb")

	out, err := runCLI(t, "check", dir, other)
	require.NoError(t, err)
	assert.Contains(t, out, other+": outside workspace")
}

func TestCheckCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("ignore:\n  absolute:\n    - vendor\n"), 0644))

	_, err := runCLI(t, "check", "--config", cfgPath, dir)
	assert.Error(t, err)
}
