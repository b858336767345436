package presets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore_Success(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "presets.toml")

	store, err := NewFileStore(path)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, path, store.Path())
}

func TestNewFileStore_CreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "presets.toml")

	_, err := NewFileStore(path)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "presets.toml"))
	require.NoError(t, err)

	list, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFileStore_SaveAndLoad(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "presets.toml"))
	require.NoError(t, err)

	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	in := []Preset{
		{ID: "01ABC", Name: "pocket zine", Format: "zine", SoftLimit: 600, CreatedAt: created},
		{ID: "01DEF", Name: "trade paperback", Format: "book", SoftLimit: 1500, CreatedAt: created},
	}

	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFileStore_SaveReplacesList(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "presets.toml"))
	require.NoError(t, err)

	require.NoError(t, store.Save([]Preset{{ID: "a", Name: "one"}, {ID: "b", Name: "two"}}))
	require.NoError(t, store.Save([]Preset{{ID: "c", Name: "only"}}))

	out, err := store.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "only", out[0].Name)
}

func TestFileStore_OnDiskShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save([]Preset{{ID: "x", Name: "report run", Format: "report", SoftLimit: 2200}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "[[presets]]"), "expected array-of-tables layout, got:\n%s", raw)
	assert.Contains(t, string(raw), "soft_limit = 2200")
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore(Preset{ID: "seed", Name: "seeded"})

	list, err := store.Load()
	require.NoError(t, err)
	require.Len(t, list, 1)

	// Mutating the returned slice must not affect the store.
	list[0].Name = "tampered"
	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "seeded", again[0].Name)

	require.NoError(t, store.Save([]Preset{{ID: "a"}, {ID: "b"}}))
	final, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, final, 2)
}
