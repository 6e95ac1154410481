package storage_test

import (
	"strings"
	"testing"

	"github.com/foodyhq/backend/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestValidateImageType(t *testing.T) {
	for _, ok := range []string{"photo.jpg", "photo.JPG", "photo.jpeg", "photo.png", "photo.webp"} {
		assert.True(t, storage.ValidateImageType(ok), "filename %q", ok)
	}
	for _, bad := range []string{"photo.gif", "photo.svg", "script.sh", "photo", ""} {
		assert.False(t, storage.ValidateImageType(bad), "filename %q", bad)
	}
}

func TestContentTypeForFilename(t *testing.T) {
	assert.Equal(t, "image/jpeg", storage.ContentTypeForFilename("photo.jpg"))
	assert.Equal(t, "image/png", storage.ContentTypeForFilename("PHOTO.PNG"))
	assert.Equal(t, "application/octet-stream", storage.ContentTypeForFilename("archive.zip"))
}

func TestObjectKey(t *testing.T) {
	key := storage.ObjectKey("photo.PNG")
	assert.True(t, strings.HasPrefix(key, "offers/"), "key %q", key)
	assert.True(t, strings.HasSuffix(key, ".png"), "key %q", key)
	assert.NotContains(t, key, "-")

	// Extensionless uploads still get a usable key.
	assert.True(t, strings.HasSuffix(storage.ObjectKey("raw"), ".jpg"))

	assert.NotEqual(t, storage.ObjectKey("a.jpg"), storage.ObjectKey("a.jpg"))
}

func TestConfigured(t *testing.T) {
	full := storage.Config{
		Endpoint:        "https://acc.r2.cloudflarestorage.com",
		Bucket:          "foody-images",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	}
	assert.True(t, full.Configured())

	partial := full
	partial.SecretAccessKey = ""
	assert.False(t, partial.Configured())
	assert.False(t, storage.Config{}.Configured())
}
