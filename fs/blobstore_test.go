package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_Put(t *testing.T) {
	t.Parallel()

	t.Run("stores data under the key", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewBlobStore(dir, "http://localhost:8080/media")

		err := store.Put(context.Background(), "audio/ch-1.mp3", []byte("mp3"), "audio/mpeg")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "audio", "ch-1.mp3"))
		require.NoError(t, err)
		assert.Equal(t, []byte("mp3"), data)
	})

	t.Run("overwrites on repeated put with the same key", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewBlobStore(dir, "http://localhost:8080/media")
		ctx := context.Background()

		require.NoError(t, store.Put(ctx, "audio/ch-1.mp3", []byte("first"), "audio/mpeg"))
		require.NoError(t, store.Put(ctx, "audio/ch-1.mp3", []byte("second"), "audio/mpeg"))

		data, err := os.ReadFile(filepath.Join(dir, "audio", "ch-1.mp3"))
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), data)

		entries, err := os.ReadDir(filepath.Join(dir, "audio"))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "overwrite must not duplicate objects")
	})

	t.Run("rejects empty keys", func(t *testing.T) {
		t.Parallel()

		store := fs.NewBlobStore(t.TempDir(), "http://localhost")
		err := store.Put(context.Background(), "", []byte("x"), "audio/mpeg")
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})

	t.Run("rejects path traversal keys", func(t *testing.T) {
		t.Parallel()

		store := fs.NewBlobStore(t.TempDir(), "http://localhost")
		err := store.Put(context.Background(), "../escape.mp3", []byte("x"), "audio/mpeg")
		require.Error(t, err)
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})
}

func TestBlobStore_PublicURL(t *testing.T) {
	t.Parallel()

	store := fs.NewBlobStore("/data", "http://localhost:8080/media/")
	assert.Equal(t, "http://localhost:8080/media/audio/ch-1.mp3", store.PublicURL("audio/ch-1.mp3"))
}
