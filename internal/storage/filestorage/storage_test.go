package filestorage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cabdin/internal/storage"
	"cabdin/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T, maxSize int64) (*filestorage.LocalFileStorage, string) {
	t.Helper()

	dir := t.TempDir()

	fs, err := filestorage.NewLocalFileStorage(dir, "http://test.local/storage/", maxSize)
	require.NoError(t, err)

	return fs, dir
}

func TestLocalFileStorage_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("successful upload", func(t *testing.T) {
		fs, dir := setupFileStorage(t, 0)

		err := fs.Upload(ctx, "berita", "berita-1-abc.png", []byte("png"), "image/png")
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, "berita", "berita-1-abc.png"))
		require.NoError(t, err)
		assert.Equal(t, "png", string(content))
		assert.Equal(t, filepath.Join(dir, "berita", "berita-1-abc.png"), fs.GetFullPath("berita", "berita-1-abc.png"))
	})

	t.Run("too large", func(t *testing.T) {
		fs, _ := setupFileStorage(t, 2)

		err := fs.Upload(ctx, "layanan", "a.pdf", []byte("abc"), "application/pdf")
		assert.ErrorIs(t, err, storage.ErrFileTooLarge)
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		fs, _ := setupFileStorage(t, 0)

		err := fs.Upload(ctx, "berita", "../escape.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, filestorage.ErrInvalidName)

		err = fs.Upload(ctx, "../up", "a.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, filestorage.ErrInvalidName)
	})

	t.Run("cancelled context", func(t *testing.T) {
		fs, _ := setupFileStorage(t, 0)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := fs.Upload(cctx, "berita", "a.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalFileStorage_Remove(t *testing.T) {
	ctx := context.Background()
	fs, dir := setupFileStorage(t, 0)

	require.NoError(t, fs.Upload(ctx, "inovasi", "a.png", []byte("a"), "image/png"))
	require.NoError(t, fs.Upload(ctx, "inovasi", "b.png", []byte("b"), "image/png"))

	err := fs.Remove(ctx, "inovasi", "a.png", "missing.png", "")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "inovasi", "a.png"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "inovasi", "b.png"))
	assert.NoError(t, err)

	// removing again is a no-op
	assert.NoError(t, fs.Remove(ctx, "inovasi", "a.png"))
}

func TestLocalFileStorage_PublicURL(t *testing.T) {
	fs, _ := setupFileStorage(t, 0)

	assert.Equal(t, "http://test.local/storage/berita/berita-1-abc.png", fs.PublicURL("berita", "berita-1-abc.png"))
}
