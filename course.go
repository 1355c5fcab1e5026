package coursegen

import (
	"context"
	"time"
)

// CourseStatus represents the lifecycle state of a course.
type CourseStatus string

// Course lifecycle states. A course starts as processing, and ends as
// either completed or failed. There is no transition out of a terminal
// state; re-ingestion creates a new course record.
const (
	CourseProcessing CourseStatus = "processing"
	CourseCompleted  CourseStatus = "completed"
	CourseFailed     CourseStatus = "failed"
)

// Valid reports whether s is a known course status.
func (s CourseStatus) Valid() bool {
	switch s {
	case CourseProcessing, CourseCompleted, CourseFailed:
		return true
	}
	return false
}

// Course represents the top-level learning unit generated from one source URL.
//
// Field ownership is split between writers so that no locking is needed:
// the ingestion pipeline is the only writer of Title, Description and Status;
// chapters are created once by the pipeline; only the narration subsystem
// writes a chapter's audio URL after creation.
type Course struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	SourceURL   string       `json:"sourceUrl"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      CourseStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Validate returns an error if the course contains invalid fields.
func (c *Course) Validate() error {
	if c.UserID == "" {
		return Errorf(EINVALID, "course user ID required")
	}
	if c.SourceURL == "" {
		return Errorf(EINVALID, "course source URL required")
	}
	if c.Status != "" && !c.Status.Valid() {
		return Errorf(EINVALID, "invalid course status %q", c.Status)
	}
	return nil
}

// CourseService represents a service for managing courses.
type CourseService interface {
	// CreateCourse creates a new course. Status defaults to processing.
	CreateCourse(ctx context.Context, course *Course) error

	// FindCourseByID retrieves a course by ID.
	// Returns ENOTFOUND if course does not exist.
	FindCourseByID(ctx context.Context, id string) (*Course, error)

	// FindCourses retrieves courses matching the filter.
	FindCourses(ctx context.Context, filter CourseFilter) ([]*Course, error)

	// UpdateCourse updates an existing course.
	// Returns ENOTFOUND if course does not exist.
	UpdateCourse(ctx context.Context, id string, upd CourseUpdate) (*Course, error)
}

// CourseFilter represents a filter for FindCourses.
type CourseFilter struct {
	ID     *string       `json:"id"`
	UserID *string       `json:"userId"`
	Status *CourseStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// CourseUpdate represents fields that can be updated on a course.
type CourseUpdate struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *CourseStatus `json:"status"`
}
