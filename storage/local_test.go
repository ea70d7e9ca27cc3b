package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(filepath.Join(dir, "uploads"))
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "img.jpg", "image/jpeg", []byte("fake-image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/img.jpg", url)

	data, err := os.ReadFile(filepath.Join(dir, "uploads", "img.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-image-bytes"), data)

	require.NoError(t, store.Delete(context.Background(), "img.jpg"))
	_, err = os.Stat(filepath.Join(dir, "uploads", "img.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestImageKey(t *testing.T) {
	key := ImageKey(42, "photo.JPG")
	assert.True(t, strings.HasSuffix(key, ".JPG"))
	assert.Contains(t, key, "_42_")

	// Collision resistant even for the same user and instant.
	assert.NotEqual(t, ImageKey(42, "photo.jpg"), ImageKey(42, "photo.jpg"))
}

func TestImageKey_NoExtension(t *testing.T) {
	key := ImageKey(7, "photo")
	assert.Equal(t, "", filepath.Ext(key))
}
