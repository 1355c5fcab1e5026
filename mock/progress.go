package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.ProgressService = (*ProgressService)(nil)

// ProgressService is a mock implementation of coursegen.ProgressService.
type ProgressService struct {
	UpsertProgressFn func(ctx context.Context, progress *coursegen.Progress) error
	FindProgressFn   func(ctx context.Context, filter coursegen.ProgressFilter) ([]*coursegen.Progress, error)
}

func (s *ProgressService) UpsertProgress(ctx context.Context, progress *coursegen.Progress) error {
	return s.UpsertProgressFn(ctx, progress)
}

func (s *ProgressService) FindProgress(ctx context.Context, filter coursegen.ProgressFilter) ([]*coursegen.Progress, error) {
	return s.FindProgressFn(ctx, filter)
}
