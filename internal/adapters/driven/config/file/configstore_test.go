package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "nested", "deep")

	store, err := NewConfigStore(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(nested, "config.toml"), store.Path())

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_ReadsTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte(`
[corpus]
backend = "sqlite"
dir = "/srv/corpus"

[documents]
enabled = ["gdpr", "covid_location"]

[output]
decorated = false
width = 100
`)
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), content, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", store.GetString("corpus.backend"))
	assert.Equal(t, "/srv/corpus", store.GetString("corpus.dir"))
	assert.Equal(t, []string{"gdpr", "covid_location"}, store.GetStringSlice("documents.enabled"))
	v, ok := store.Get("output.decorated")
	assert.True(t, ok)
	assert.Equal(t, false, v)
	assert.Equal(t, 100, store.GetInt("output.width"))
	assert.Equal(t, []string{"corpus.backend", "corpus.dir", "documents.enabled", "output.decorated", "output.width"}, store.Keys())
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not toml {{{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_Getters_WrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.backend", "csv"))

	assert.Zero(t, store.GetInt("corpus.backend"))
	assert.False(t, store.GetBool("corpus.backend"))
	assert.Nil(t, store.GetStringSlice("corpus.backend"))
	assert.Empty(t, store.GetString("missing"))
}

func TestConfigStore_SetPersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("corpus.backend", "sqlite"))
	require.NoError(t, store.Set("corpus.dir", "/srv/corpus"))
	require.NoError(t, store.Set("output.decorated", true))
	require.NoError(t, store.Set("documents.enabled", []string{"gdpr"}))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[corpus]")
	assert.NotContains(t, string(data), `'corpus.backend'`)

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", reloaded.GetString("corpus.backend"))
	assert.Equal(t, "/srv/corpus", reloaded.GetString("corpus.dir"))
	assert.True(t, reloaded.GetBool("output.decorated"))
	assert.Equal(t, []string{"gdpr"}, reloaded.GetStringSlice("documents.enabled"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.backend", "csv"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Set_Conflict(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus", "flat"))

	err = store.Set("corpus.backend", "sqlite")

	assert.Error(t, err)
	_, ok := store.Get("corpus.backend")
	assert.False(t, ok)
	assert.Equal(t, "flat", store.GetString("corpus"))
}

func TestConfigStore_Set_EmptyKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("", "x"))
}

func TestConfigStore_Set_Unmarshallable(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	err = store.Set("channel", make(chan int))

	assert.Error(t, err)
	_, ok := store.Get("channel")
	assert.False(t, ok)
}

func TestConfigStore_Set_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.backend", "csv"))

	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("corpus.dir", "/tmp"))
}

func TestConfigStore_Load_Missing(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("corpus.backend", "csv"))
	require.NoError(t, os.Remove(store.Path()))

	require.NoError(t, store.Load())
	_, ok := store.Get("corpus.backend")
	assert.False(t, ok)
}

func TestConfigStore_Load_CommentOnly(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("# nothing yet\n"), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("corpus.backend")
	assert.False(t, ok)
	require.NoError(t, store.Set("corpus.backend", "csv"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("corpus.backend", "csv")
		}()
		go func() {
			defer wg.Done()
			_ = store.GetString("corpus.backend")
		}()
	}
	wg.Wait()

	assert.Equal(t, "csv", store.GetString("corpus.backend"))
}

func TestUnflattenMap(t *testing.T) {
	nested, err := unflattenMap(map[string]any{
		"corpus.backend": "csv",
		"corpus.dir":     "/srv",
		"top":            1,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"corpus": map[string]any{"backend": "csv", "dir": "/srv"},
		"top":    1,
	}, nested)

	_, err = unflattenMap(map[string]any{"a.b": 1, "a.b.c": 2})
	assert.Error(t, err)
}
