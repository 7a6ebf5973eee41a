package staging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/embergrid/internal/params"
	"github.com/vk/embergrid/internal/testutil"
)

// fixtureParams decodes the canonical parameter fixture with its input
// folder pointed at a populated temp directory.
func fixtureParams(t *testing.T, populate bool) *params.Parameters {
	t.Helper()
	inputs := t.TempDir()
	lines := testutil.ParamLines()
	lines[0] = inputs

	p, err := params.Decode(lines)
	require.NoError(t, err)

	if populate {
		for _, name := range InputFiles(p) {
			path := filepath.Join(inputs, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
			require.NoError(t, os.WriteFile(path, []byte("content of "+name), 0o644))
		}
	}
	return p
}

func TestStage(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	p := fixtureParams(t, true)
	destRoot := t.TempDir()

	// --- Act ---
	dir, err := Stage(context.Background(), p, destRoot, "job-1")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destRoot, "job-1"), dir)
	for _, name := range InputFiles(p) {
		staged, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to be staged", name)
		assert.Equal(t, "content of "+name, string(staged))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 5, "exactly the five input files are staged")
}

func TestStage_RefusesExistingDirectory(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	p := fixtureParams(t, true)
	destRoot := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(destRoot, "job-1"), 0o755))

	// --- Act ---
	_, err := Stage(context.Background(), p, destRoot, "job-1")

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestStage_MissingInputRemovesPartialDirectory(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	p := fixtureParams(t, false)
	destRoot := t.TempDir()

	// --- Act ---
	_, err := Stage(context.Background(), p, destRoot, "job-1")

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
	_, statErr := os.Stat(filepath.Join(destRoot, "job-1"))
	assert.True(t, os.IsNotExist(statErr), "partial staging directory must be removed")
}

func TestStage_NestedInputNames(t *testing.T) {
	t.Parallel()
	// --- Arrange ---
	inputs := t.TempDir()
	lines := testutil.ParamLines()
	lines[0] = inputs
	lines[5] = filepath.Join("weather", "stream.txt")
	p, err := params.Decode(lines)
	require.NoError(t, err)
	for _, name := range InputFiles(p) {
		path := filepath.Join(inputs, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	destRoot := t.TempDir()

	// --- Act ---
	dir, err := Stage(context.Background(), p, destRoot, "job-2")

	// --- Assert ---
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "weather", "stream.txt"))
	assert.NoError(t, statErr)
}
