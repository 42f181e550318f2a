package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// minimal valid PNG header, enough for content sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestDiskStore_UploadDeleteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/static/uploads")

	obj, err := store.Upload(context.Background(), pngBytes, "museum/avatars", "admin_a_1234")

	assert.NoError(t, err)
	assert.Equal(t, "museum/avatars/admin_a_1234.png", obj.Handle)
	assert.Equal(t, "/static/uploads/museum/avatars/admin_a_1234.png", obj.URL)
	assert.FileExists(t, filepath.Join(dir, "museum", "avatars", "admin_a_1234.png"))

	assert.NoError(t, store.Delete(context.Background(), obj.Handle))
	_, statErr := os.Stat(filepath.Join(dir, "museum", "avatars", "admin_a_1234.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDiskStore_Upload_RejectsEmptyContent(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	_, err := store.Upload(context.Background(), nil, "museum", "x")

	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestDiskStore_Upload_RejectsUnknownType(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	_, err := store.Upload(context.Background(), []byte("%PDF-1.4 not an image"), "museum", "x")

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDiskStore_Delete_MissingFileIsNoError(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	assert.NoError(t, store.Delete(context.Background(), "museum/gone.png"))
}

func TestDiskStore_HandleFromURL(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/static/uploads")

	handle, ok := store.HandleFromURL("/static/uploads/museum/a.png")
	assert.True(t, ok)
	assert.Equal(t, "museum/a.png", handle)

	_, ok = store.HandleFromURL("https://cdn.example.com/a.png")
	assert.False(t, ok)
}
