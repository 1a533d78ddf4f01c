package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh instance of every backend.
func backends(t *testing.T) map[string]KV {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := OpenSQLite(filepath.Join(dir, "db", "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]KV{
		BackendMemory: NewMemory(),
		BackendFile:   NewFile(filepath.Join(dir, "file", "drafts.json")),
		BackendSQLite: sqlite,
	}
}

func TestKVContract(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get("missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set("k", `{"draft":{}}`))
			v, ok, err := kv.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `{"draft":{}}`, v)

			require.NoError(t, kv.Set("k", "second"))
			v, _, err = kv.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "second", v)

			require.NoError(t, kv.Set("other", "x"))
			require.NoError(t, kv.Remove("k"))
			_, ok, err = kv.Get("k")
			require.NoError(t, err)
			assert.False(t, ok)

			v, ok, err = kv.Get("other")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "x", v)

			assert.NoError(t, kv.Remove("never-set"))
		})
	}
}

func TestKVConcurrentWrites(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					assert.NoError(t, kv.Set("shared", "v"))
				}()
			}
			wg.Wait()

			v, ok, err := kv.Get("shared")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v", v)
		})
	}
}

func TestFile_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "drafts.json")

	require.NoError(t, NewFile(path).Set("k", "v"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	v, ok, err := NewFile(path).Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f := NewFile(path)
	_, _, err := f.Get("k")
	require.Error(t, err)
	assert.ErrorIs(t, err, errCorruptFile)
}

func TestFile_SetReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f := NewFile(path)
	require.NoError(t, f.Set("k", "v"))

	v, ok, err := f.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestFile_RemoveReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	f := NewFile(path)
	require.NoError(t, f.Remove("k"))

	_, ok, err := f.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFile_NullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0o600))

	f := NewFile(path)
	require.NoError(t, f.Set("k", "v"))
	_, ok, err := f.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, ok, err := NewFile(path).Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLite_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.db")

	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set("k", "v"))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	v, ok, err := second.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"memory", Config{Backend: BackendMemory}, ""},
		{"file", Config{Backend: BackendFile, Path: filepath.Join(dir, "a.json")}, ""},
		{"sqlite", Config{Backend: BackendSQLite, Path: filepath.Join(dir, "a.db")}, ""},
		{"file without path", Config{Backend: BackendFile}, "requires a path"},
		{"sqlite without path", Config{Backend: BackendSQLite}, "requires a path"},
		{"unknown", Config{Backend: "redis"}, `unknown store backend "redis"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := Open(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, kv.Close())
		})
	}
}
