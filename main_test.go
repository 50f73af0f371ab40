package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/anima-geom/engine/core"
)

const testScene = "engine/scene/testdata/scene.toml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// flags keep their state between runs of the same command
	flag := rootCmd.PersistentFlags().Lookup("log-level")
	flag.Changed = false
	require.NoError(t, flag.Value.Set("info"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvaluateCommand(t *testing.T) {
	out, err := execute(t, "evaluate", testScene, "--log-level", "error")
	// The scene has a null plane and a degenerate shape on purpose.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 9 queries failed")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "intersection(crate, neighbour): true", lines[0])
	assert.Equal(t, "relation(crate, ceiling): negative side", lines[4])
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "export", testScene, "--out", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "spun.stl"))
}

func TestBadArguments(t *testing.T) {
	_, err := execute(t, "evaluate")
	assert.Error(t, err)

	_, err = execute(t, "evaluate", "missing.toml")
	assert.Error(t, err)

	_, err = execute(t, "evaluate", testScene, "--log-level", "loud")
	assert.Error(t, err)
}

func TestSceneLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))
	defer core.SetLogLevel("info")

	_, err := execute(t, "evaluate", path)
	require.NoError(t, err)
	assert.Equal(t, "warn", core.LogLevel())

	_, err = execute(t, "evaluate", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "error", core.LogLevel())
}
