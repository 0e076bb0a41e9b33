package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"browser-meta.json",
		"snapshots/browser-meta.yaml",
		"nested/deep/path/file.txt",
		"file.with.dots.txt",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "test data"

			result, err := storage.Put(ctx, key, strings.NewReader(data))
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			fullPath := filepath.Join(storage.(*fileStorage).dir, key)
			assert.Equal(t, fullPath, result.Path)
			content, err := os.ReadFile(fullPath)
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_ReplacesExistingFile(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()
	key := "browser-meta.json"

	_, err := storage.Put(ctx, key, strings.NewReader("first snapshot"))
	require.NoError(t, err)
	_, err = storage.Put(ctx, key, strings.NewReader("second"))
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	// no temp files left behind
	entries, err := os.ReadDir(storage.(*fileStorage).dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"snapshots/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"))
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "snapshots/browser-meta.json"
	data := `{"browserTypeSum": {}, "browserSum": {}}`

	_, err := storage.Put(ctx, key, strings.NewReader(data))
	require.NoError(t, err)

	readCloser, err := storage.Get(ctx, key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func newTestStorage(t *testing.T) FileStorage {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage
}
