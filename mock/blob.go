package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.BlobStore = (*BlobStore)(nil)

// BlobStore is a mock implementation of coursegen.BlobStore.
type BlobStore struct {
	PutFn       func(ctx context.Context, key string, data []byte, contentType string) error
	PublicURLFn func(key string) string
}

func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return s.PutFn(ctx, key, data, contentType)
}

func (s *BlobStore) PublicURL(key string) string {
	return s.PublicURLFn(key)
}
