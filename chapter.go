package coursegen

import (
	"context"
	"time"
)

// Chapter represents an ordered section of a course with its own narration
// script and media. Chapters are created once, in a single batch, by the
// ingestion pipeline; AudioURL is the only field mutated afterward, by the
// narration subsystem, idempotently overwritable on retry.
type Chapter struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Script      string    `json:"script"`
	OrderIndex  int       `json:"orderIndex"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	AudioURL    string    `json:"audioUrl,omitempty"`
	SlideURL    string    `json:"slideUrl,omitempty"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.CourseID == "" {
		return Errorf(EINVALID, "chapter course ID required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "chapter title required")
	}
	if c.OrderIndex < 0 {
		return Errorf(EINVALID, "chapter order index must be non-negative")
	}
	return nil
}

// ChapterService represents a service for managing chapters.
type ChapterService interface {
	// CreateChapters inserts all chapters in a single batch and fills in
	// generated IDs and timestamps on the passed structs. Order indices
	// must form a contiguous zero-based sequence within the course.
	CreateChapters(ctx context.Context, chapters []*Chapter) error

	// FindChapterByID retrieves a chapter by ID.
	// Returns ENOTFOUND if chapter does not exist.
	FindChapterByID(ctx context.Context, id string) (*Chapter, error)

	// FindChapters retrieves chapters matching the filter,
	// sorted by order index.
	FindChapters(ctx context.Context, filter ChapterFilter) ([]*Chapter, error)

	// UpdateChapter updates mutable fields of an existing chapter.
	// Returns ENOTFOUND if chapter does not exist.
	UpdateChapter(ctx context.Context, id string, upd ChapterUpdate) (*Chapter, error)
}

// ChapterFilter represents a filter for FindChapters.
type ChapterFilter struct {
	ID       *string `json:"id"`
	CourseID *string `json:"courseId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ChapterUpdate represents fields that can be updated on a chapter after
// creation. Structural fields (title, content, script, order) are immutable.
type ChapterUpdate struct {
	AudioURL *string `json:"audioUrl"`
	SlideURL *string `json:"slideUrl"`
}
