package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/coursegen/coursegen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursegen.ChapterService = (*ChapterService)(nil)

// ChapterService implements coursegen.ChapterService using SQLite.
type ChapterService struct {
	db *DB
}

// NewChapterService creates a new ChapterService.
func NewChapterService(db *DB) *ChapterService {
	return &ChapterService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateChapters inserts all chapters in a single batch, filling in
// generated IDs, content hashes and timestamps. Either every chapter is
// inserted or none are.
func (s *ChapterService) CreateChapters(ctx context.Context, chapters []*coursegen.Chapter) error {
	if len(chapters) == 0 {
		return coursegen.Errorf(coursegen.EINVALID, "at least one chapter required")
	}
	for _, ch := range chapters {
		if err := ch.Validate(); err != nil {
			return err
		}
	}

	now := time.Now().UTC()

	var query strings.Builder
	var args []any
	query.WriteString("INSERT INTO chapters (id, course_id, title, content, script, order_index, video_url, audio_url, slide_url, content_hash, created_at) VALUES ")

	for i, ch := range chapters {
		ch.ID = uuid.New().String()
		ch.CreatedAt = now
		ch.ContentHash = hashContent(ch.Content + "\n" + ch.Script)

		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		args = append(args, ch.ID, ch.CourseID, ch.Title, ch.Content, ch.Script,
			ch.OrderIndex, ch.VideoURL, ch.AudioURL, ch.SlideURL, ch.ContentHash,
			ch.CreatedAt.Format(time.RFC3339))
	}

	_, err := s.db.ExecContext(ctx, query.String(), args...)
	return err
}

const chapterColumns = "id, course_id, title, content, script, order_index, video_url, audio_url, slide_url, content_hash, created_at"

func scanChapter(scan func(dest ...any) error) (*coursegen.Chapter, error) {
	var ch coursegen.Chapter
	var createdAt string

	if err := scan(&ch.ID, &ch.CourseID, &ch.Title, &ch.Content, &ch.Script,
		&ch.OrderIndex, &ch.VideoURL, &ch.AudioURL, &ch.SlideURL, &ch.ContentHash,
		&createdAt); err != nil {
		return nil, err
	}

	var err error
	if ch.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &ch, nil
}

// FindChapterByID retrieves a chapter by ID.
func (s *ChapterService) FindChapterByID(ctx context.Context, id string) (*coursegen.Chapter, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+chapterColumns+" FROM chapters WHERE id = ?", id)

	ch, err := scanChapter(row.Scan)
	if err == sql.ErrNoRows {
		return nil, coursegen.Errorf(coursegen.ENOTFOUND, "chapter not found")
	}
	if err != nil {
		return nil, err
	}
	return ch, nil
}

// FindChapters retrieves chapters matching the filter, sorted by order index.
func (s *ChapterService) FindChapters(ctx context.Context, filter coursegen.ChapterFilter) ([]*coursegen.Chapter, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + chapterColumns + " FROM chapters WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.CourseID != nil {
		query.WriteString(" AND course_id = ?")
		args = append(args, *filter.CourseID)
	}

	query.WriteString(" ORDER BY order_index ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*coursegen.Chapter
	for rows.Next() {
		ch, err := scanChapter(rows.Scan)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}

	return chapters, rows.Err()
}

// UpdateChapter updates mutable fields of an existing chapter. Only media
// URLs can change after creation; repeating an update is idempotent.
func (s *ChapterService) UpdateChapter(ctx context.Context, id string, upd coursegen.ChapterUpdate) (*coursegen.Chapter, error) {
	ch, err := s.FindChapterByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.AudioURL != nil {
		ch.AudioURL = *upd.AudioURL
	}
	if upd.SlideURL != nil {
		ch.SlideURL = *upd.SlideURL
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE chapters
		SET audio_url = ?, slide_url = ?
		WHERE id = ?
	`, ch.AudioURL, ch.SlideURL, id)

	if err != nil {
		return nil, err
	}

	return ch, nil
}
