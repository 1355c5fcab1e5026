package coursegen

import (
	"context"
	"time"
)

// Progress represents a user's completion state for one chapter.
// Progress is written by the playback UI, not by the ingestion pipeline;
// the pipeline only produces the chapter identifiers it keys on.
type Progress struct {
	UserID      string    `json:"userId"`
	ChapterID   string    `json:"chapterId"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}

// Validate returns an error if the progress record contains invalid fields.
func (p *Progress) Validate() error {
	if p.UserID == "" {
		return Errorf(EINVALID, "progress user ID required")
	}
	if p.ChapterID == "" {
		return Errorf(EINVALID, "progress chapter ID required")
	}
	return nil
}

// ProgressService represents a service for tracking chapter completion.
type ProgressService interface {
	// UpsertProgress creates or replaces the progress record keyed by
	// (user, chapter).
	UpsertProgress(ctx context.Context, progress *Progress) error

	// FindProgress retrieves progress records matching the filter.
	FindProgress(ctx context.Context, filter ProgressFilter) ([]*Progress, error)
}

// ProgressFilter represents a filter for FindProgress.
type ProgressFilter struct {
	UserID    *string `json:"userId"`
	ChapterID *string `json:"chapterId"`
}
