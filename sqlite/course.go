package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/coursegen/coursegen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursegen.CourseService = (*CourseService)(nil)

// CourseService implements coursegen.CourseService using SQLite.
type CourseService struct {
	db *DB
}

// NewCourseService creates a new CourseService.
func NewCourseService(db *DB) *CourseService {
	return &CourseService{db: db}
}

// CreateCourse creates a new course. Status defaults to processing.
func (s *CourseService) CreateCourse(ctx context.Context, course *coursegen.Course) error {
	if course.Status == "" {
		course.Status = coursegen.CourseProcessing
	}
	if err := course.Validate(); err != nil {
		return err
	}

	course.ID = uuid.New().String()
	course.CreatedAt = time.Now().UTC()
	course.UpdatedAt = course.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO courses (id, user_id, source_url, title, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, course.ID, course.UserID, course.SourceURL, course.Title, course.Description,
		string(course.Status), course.CreatedAt.Format(time.RFC3339), course.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindCourseByID retrieves a course by ID.
func (s *CourseService) FindCourseByID(ctx context.Context, id string) (*coursegen.Course, error) {
	var course coursegen.Course
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, source_url, title, description, status, created_at, updated_at
		FROM courses
		WHERE id = ?
	`, id).Scan(&course.ID, &course.UserID, &course.SourceURL, &course.Title,
		&course.Description, &course.Status, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, coursegen.Errorf(coursegen.ENOTFOUND, "course not found")
	}
	if err != nil {
		return nil, err
	}

	if course.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if course.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &course, nil
}

// FindCourses retrieves courses matching the filter, newest first.
func (s *CourseService) FindCourses(ctx context.Context, filter coursegen.CourseFilter) ([]*coursegen.Course, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, user_id, source_url, title, description, status, created_at, updated_at FROM courses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.UserID != nil {
		query.WriteString(" AND user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*coursegen.Course
	for rows.Next() {
		var course coursegen.Course
		var createdAt, updatedAt string

		if err := rows.Scan(&course.ID, &course.UserID, &course.SourceURL, &course.Title,
			&course.Description, &course.Status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if course.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if course.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		courses = append(courses, &course)
	}

	return courses, rows.Err()
}

// UpdateCourse updates an existing course.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, upd coursegen.CourseUpdate) (*coursegen.Course, error) {
	course, err := s.FindCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		course.Title = *upd.Title
	}
	if upd.Description != nil {
		course.Description = *upd.Description
	}
	if upd.Status != nil {
		if !upd.Status.Valid() {
			return nil, coursegen.Errorf(coursegen.EINVALID, "invalid course status %q", *upd.Status)
		}
		course.Status = *upd.Status
	}
	course.UpdatedAt = time.Now().UTC()

	if err := course.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE courses
		SET title = ?, description = ?, status = ?, updated_at = ?
		WHERE id = ?
	`, course.Title, course.Description, string(course.Status),
		course.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return course, nil
}
