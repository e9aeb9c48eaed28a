package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbes(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.hcl")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, IsFile(file))
	assert.False(t, IsDir(file))
	assert.True(t, IsDir(dir))
	assert.False(t, IsFile(dir))
	assert.False(t, IsFile(filepath.Join(dir, "missing")))
}

func TestListUnitNames(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(first, "alpha.hcl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(first, "notes.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "beta.yaml"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(second, "alpha.json"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(second, "pkg"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(second, ".git"), 0o755))

	names, err := ListUnitNames([]string{first, filepath.Join(first, "missing"), second}, []string{".hcl", ".yaml", ".json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "pkg"}, names)
}

func TestListUnitNames_PanicsWithoutExtensions(t *testing.T) {
	assert.Panics(t, func() { _, _ = ListUnitNames(nil, nil) })
}
