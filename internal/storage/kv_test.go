package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both backends must behave identically under the repository.
func kvBackends(t *testing.T) map[string]KV {
	t.Helper()

	fileKV, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	sqliteKV, err := OpenSQLiteKV(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	return map[string]KV{
		"file":   fileKV,
		"sqlite": sqliteKV,
	}
}

func TestKV_GetSetDelete(t *testing.T) {
	for name, kv := range kvBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer kv.Close()

			_, found, err := kv.Get("missing")
			require.NoError(t, err)
			assert.False(t, found)

			require.NoError(t, kv.Set("k", []byte(`{"a":1}`)))
			got, found, err := kv.Get("k")
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, `{"a":1}`, string(got))

			// overwrite
			require.NoError(t, kv.Set("k", []byte(`{"a":2}`)))
			got, _, err = kv.Get("k")
			require.NoError(t, err)
			assert.Equal(t, `{"a":2}`, string(got))

			require.NoError(t, kv.Delete("k"))
			_, found, err = kv.Get("k")
			require.NoError(t, err)
			assert.False(t, found)

			// deleting a missing key is not an error
			require.NoError(t, kv.Delete("k"))
		})
	}
}
