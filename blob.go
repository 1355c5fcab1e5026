package coursegen

import "context"

// BlobStore persists binary assets (narration audio) under stable keys.
type BlobStore interface {
	// Put stores data under key with the given content type, overwriting
	// any existing object. Put is idempotent: repeating a Put with the
	// same key replaces rather than duplicates.
	Put(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL returns the URL an object stored under key is served from.
	// It is a pure function of the key and does not check existence.
	PublicURL(key string) string
}
