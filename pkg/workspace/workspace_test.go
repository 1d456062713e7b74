package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()

	w := New(tmpDir)
	assert.Equal(t, filepath.Join(tmpDir, DirName), w.Dir)

	// Simulate leftovers from a previous run
	require.NoError(t, os.MkdirAll(w.ChartOutputDir(), os.ModePerm))
	stale := filepath.Join(w.Dir, "stale-file")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	require.NoError(t, w.Reset())

	assert.DirExists(t, w.Dir)
	assert.NoFileExists(t, stale)
	assert.NoDirExists(t, w.ChartOutputDir())

	entries, err := os.ReadDir(w.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStageBuildInputs(t *testing.T) {
	tmpDir := t.TempDir()

	sourceDir := filepath.Join(tmpDir, "image")
	require.NoError(t, os.MkdirAll(sourceDir, os.ModePerm))

	for name := range buildInputs {
		contents := []byte("contents of " + name)
		require.NoError(t, os.WriteFile(filepath.Join(sourceDir, name), contents, 0o644))
	}

	w := New(tmpDir)
	require.NoError(t, w.Reset())

	require.NoError(t, w.StageBuildInputs(sourceDir))

	for name := range buildInputs {
		contents, err := os.ReadFile(filepath.Join(w.Dir, name))
		require.NoError(t, err)
		assert.Equal(t, "contents of "+name, string(contents))
	}
}

func TestStageBuildInputs_MissingInput(t *testing.T) {
	tmpDir := t.TempDir()

	sourceDir := filepath.Join(tmpDir, "image")
	require.NoError(t, os.MkdirAll(sourceDir, os.ModePerm))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, "Dockerfile"), []byte("FROM scratch"), 0o644))

	w := New(tmpDir)
	require.NoError(t, w.Reset())

	err := w.StageBuildInputs(sourceDir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "staging build input")
}

func TestResetChartOutput(t *testing.T) {
	tmpDir := t.TempDir()

	w := New(tmpDir)
	require.NoError(t, w.Reset())

	require.NoError(t, os.MkdirAll(w.ChartOutputDir(), os.ModePerm))
	staleArchive := filepath.Join(w.ChartOutputDir(), "myapp-0.1.0.tgz")
	require.NoError(t, os.WriteFile(staleArchive, []byte("archive"), 0o644))

	require.NoError(t, w.ResetChartOutput())

	assert.DirExists(t, w.ChartOutputDir())
	assert.NoFileExists(t, staleArchive)
}
