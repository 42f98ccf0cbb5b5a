package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// getProjectRoot returns the absolute path to the project root.
func getProjectRoot(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	// Walk up to find go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	t.Fatal("go.mod not found")
	return ""
}

// buildBinary compiles fimon into a temp dir and returns the path.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping build test in short mode")
	}

	binPath := filepath.Join(t.TempDir(), "fimon-test")
	buildCmd := exec.Command("go", "build", "-o", binPath, ".")
	buildCmd.Dir = filepath.Join(getProjectRoot(t), "cmd", "fimon")
	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "build failed: %s", string(output))
	return binPath
}

// TestMainEntryPoints tests that the main function is properly defined.
func TestMainEntryPoints(t *testing.T) {
	_ = main
}

// TestMainHelpFlag tests that the help flag works.
func TestMainHelpFlag(t *testing.T) {
	binPath := buildBinary(t)

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(out), "fimon")
	assert.Contains(t, string(out), "scan")
	assert.Contains(t, string(out), "check")
	assert.Contains(t, string(out), "watch")
}

// TestMainUnknownCommand tests error handling for unknown commands.
func TestMainUnknownCommand(t *testing.T) {
	binPath := buildBinary(t)

	out, err := exec.Command(binPath, "unknown-command-xyz").CombinedOutput()
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(string(out)), "unknown")
}

// TestBinaryScanCheckIntegration scans a directory, mutates it, and
// verifies the check run reports the changes.
func TestBinaryScanCheckIntegration(t *testing.T) {
	binPath := buildBinary(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0644))

	out, err := exec.Command(binPath, "scan", dir).CombinedOutput()
	require.NoError(t, err, "scan failed: %s", string(out))
	assert.Contains(t, string(out), "[INFO] baseline created")

	_, err = os.Stat(filepath.Join(dir, ".baseline.txt"))
	assert.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta"), 0644))
	require.NoError(t, os.Remove(filepath.Join(dir, "a.txt")))

	out, err = exec.Command(binPath, "--no-color", "check", dir).CombinedOutput()
	require.NoError(t, err, "check failed: %s", string(out))
	assert.Contains(t, string(out), "[CREATED] b.txt")
	assert.Contains(t, string(out), "[DELETED] a.txt")
}

// TestBinaryJSONOutput tests JSON output format.
func TestBinaryJSONOutput(t *testing.T) {
	binPath := buildBinary(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0644))

	out, err := exec.Command(binPath, "--json", "scan", dir).CombinedOutput()
	require.NoError(t, err, "scan failed: %s", string(out))
	assert.Contains(t, string(out), `"file_count"`)

	out, err = exec.Command(binPath, "--json", "info", dir).CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"baseline_exists": true`)
}
