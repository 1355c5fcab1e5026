package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/coursegen/coursegen"
)

// Compile-time interface verification.
var _ coursegen.ProgressService = (*ProgressService)(nil)

// ProgressService implements coursegen.ProgressService using SQLite.
type ProgressService struct {
	db *DB
}

// NewProgressService creates a new ProgressService.
func NewProgressService(db *DB) *ProgressService {
	return &ProgressService{db: db}
}

// UpsertProgress creates or replaces the progress record keyed by
// (user, chapter).
func (s *ProgressService) UpsertProgress(ctx context.Context, progress *coursegen.Progress) error {
	if err := progress.Validate(); err != nil {
		return err
	}

	if progress.Completed && progress.CompletedAt.IsZero() {
		progress.CompletedAt = time.Now().UTC()
	}

	var completedAt string
	if !progress.CompletedAt.IsZero() {
		completedAt = progress.CompletedAt.Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_progress (user_id, chapter_id, completed, completed_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, chapter_id) DO UPDATE SET
			completed = excluded.completed,
			completed_at = excluded.completed_at
	`, progress.UserID, progress.ChapterID, boolToInt(progress.Completed), completedAt)

	return err
}

// FindProgress retrieves progress records matching the filter.
func (s *ProgressService) FindProgress(ctx context.Context, filter coursegen.ProgressFilter) ([]*coursegen.Progress, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT user_id, chapter_id, completed, completed_at FROM user_progress WHERE 1=1")

	if filter.UserID != nil {
		query.WriteString(" AND user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.ChapterID != nil {
		query.WriteString(" AND chapter_id = ?")
		args = append(args, *filter.ChapterID)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*coursegen.Progress
	for rows.Next() {
		var p coursegen.Progress
		var completed int
		var completedAt string

		if err := rows.Scan(&p.UserID, &p.ChapterID, &completed, &completedAt); err != nil {
			return nil, err
		}
		p.Completed = completed != 0
		if completedAt != "" {
			if p.CompletedAt, err = parseRFC3339(completedAt, "completed_at"); err != nil {
				return nil, err
			}
		}

		records = append(records, &p)
	}

	return records, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
