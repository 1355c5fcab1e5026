// Package fs provides a filesystem-backed blob store for narration audio.
// Objects live under a base directory and are served from a base URL by
// whatever static file server fronts that directory.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/coursegen/coursegen"
)

// Ensure BlobStore implements coursegen.BlobStore at compile time.
var _ coursegen.BlobStore = (*BlobStore)(nil)

// BlobStore stores blobs as files under baseDir and maps keys to URLs
// under baseURL.
type BlobStore struct {
	baseDir string
	baseURL string
}

// NewBlobStore creates a new BlobStore.
func NewBlobStore(baseDir, baseURL string) *BlobStore {
	return &BlobStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Put stores data under key, overwriting any existing object. The write is
// atomic: data goes to a temp file first and is renamed into place, so a
// concurrent reader never observes a partial object.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return coursegen.Errorf(coursegen.EINVALID, "blob key required")
	}
	if strings.Contains(key, "..") {
		return coursegen.Errorf(coursegen.EINVALID, "blob key must not contain path traversal")
	}

	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".put-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, fullPath)
}

// PublicURL returns the URL an object stored under key is served from.
func (s *BlobStore) PublicURL(key string) string {
	return s.baseURL + "/" + key
}
