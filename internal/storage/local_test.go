package storage

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smallest payload http.DetectContentType recognizes as image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestStore(t *testing.T) *LocalImageStore {
	t.Helper()
	store, err := NewLocalImageStore(t.TempDir(), []string{"image/png", "image/jpeg"})
	if err != nil {
		t.Fatalf("error creating store: %v", err)
	}
	return store
}

func TestLocalImageStore_SaveAndList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("lists images saved under per-incident subfolders", func(t *testing.T) {
		p1, err := store.SaveImage(ctx, bytes.NewReader(pngHeader), "incidents/7", "crash.png")
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(p1, "incidents/7/"))

		p2, err := store.SaveImage(ctx, bytes.NewReader(pngHeader), "incidents/8", "scrape.png")
		assert.NoError(t, err)

		paths, err := store.ListFolder(ctx, "incidents")
		assert.NoError(t, err)
		assert.Contains(t, paths, p1)
		assert.Contains(t, paths, p2)
	})

	t.Run("listing a missing folder is empty, not an error", func(t *testing.T) {
		paths, err := store.ListFolder(ctx, "no-such-folder")
		assert.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("saved files exist and can be opened", func(t *testing.T) {
		p, err := store.SaveImage(ctx, bytes.NewReader(pngHeader), "incidents/9", "dent.png")
		assert.NoError(t, err)

		ok, err := store.Exists(ctx, p)
		assert.NoError(t, err)
		assert.True(t, ok)

		f, err := store.Open(p)
		assert.NoError(t, err)
		f.Close()
	})
}

func TestLocalImageStore_DeleteFile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("deletes a stored file and drops it from the listing", func(t *testing.T) {
		p, err := store.SaveImage(ctx, bytes.NewReader(pngHeader), "incidents/7", "crash.png")
		assert.NoError(t, err)

		removed, err := store.DeleteFile(ctx, p)
		assert.NoError(t, err)
		assert.True(t, removed)

		paths, err := store.ListFolder(ctx, "incidents")
		assert.NoError(t, err)
		assert.NotContains(t, paths, p)
	})

	t.Run("deleting a missing file reports false", func(t *testing.T) {
		removed, err := store.DeleteFile(ctx, "incidents/7/gone.png")
		assert.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestLocalImageStore_IsValidImage(t *testing.T) {
	store := newTestStore(t)

	assert.True(t, store.IsValidImage(pngHeader))
	assert.False(t, store.IsValidImage([]byte("%PDF-1.7 not an image")))
}
