package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.ChapterService = (*ChapterService)(nil)

// ChapterService is a mock implementation of coursegen.ChapterService.
type ChapterService struct {
	CreateChaptersFn  func(ctx context.Context, chapters []*coursegen.Chapter) error
	FindChapterByIDFn func(ctx context.Context, id string) (*coursegen.Chapter, error)
	FindChaptersFn    func(ctx context.Context, filter coursegen.ChapterFilter) ([]*coursegen.Chapter, error)
	UpdateChapterFn   func(ctx context.Context, id string, upd coursegen.ChapterUpdate) (*coursegen.Chapter, error)
}

func (s *ChapterService) CreateChapters(ctx context.Context, chapters []*coursegen.Chapter) error {
	return s.CreateChaptersFn(ctx, chapters)
}

func (s *ChapterService) FindChapterByID(ctx context.Context, id string) (*coursegen.Chapter, error) {
	return s.FindChapterByIDFn(ctx, id)
}

func (s *ChapterService) FindChapters(ctx context.Context, filter coursegen.ChapterFilter) ([]*coursegen.Chapter, error) {
	return s.FindChaptersFn(ctx, filter)
}

func (s *ChapterService) UpdateChapter(ctx context.Context, id string, upd coursegen.ChapterUpdate) (*coursegen.Chapter, error) {
	return s.UpdateChapterFn(ctx, id, upd)
}
