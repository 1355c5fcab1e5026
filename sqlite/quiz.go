package sqlite

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/coursegen/coursegen"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ coursegen.QuizService = (*QuizService)(nil)

// QuizService implements coursegen.QuizService using SQLite.
// Options are stored as a JSON array in a text column.
type QuizService struct {
	db *DB
}

// NewQuizService creates a new QuizService.
func NewQuizService(db *DB) *QuizService {
	return &QuizService{db: db}
}

// CreateQuizzes inserts all quizzes in a single batch, filling in
// generated IDs.
func (s *QuizService) CreateQuizzes(ctx context.Context, quizzes []*coursegen.Quiz) error {
	if len(quizzes) == 0 {
		return coursegen.Errorf(coursegen.EINVALID, "at least one quiz required")
	}
	for _, q := range quizzes {
		if err := q.Validate(); err != nil {
			return err
		}
	}

	var query strings.Builder
	var args []any
	query.WriteString("INSERT INTO quizzes (id, chapter_id, question, options, correct_answer, explanation) VALUES ")

	for i, q := range quizzes {
		q.ID = uuid.New().String()

		options, err := json.Marshal(q.Options)
		if err != nil {
			return err
		}

		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("(?, ?, ?, ?, ?, ?)")
		args = append(args, q.ID, q.ChapterID, q.Question, string(options), q.CorrectAnswer, q.Explanation)
	}

	_, err := s.db.ExecContext(ctx, query.String(), args...)
	return err
}

// FindQuizzes retrieves quizzes matching the filter in insertion order.
func (s *QuizService) FindQuizzes(ctx context.Context, filter coursegen.QuizFilter) ([]*coursegen.Quiz, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, chapter_id, question, options, correct_answer, explanation FROM quizzes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ChapterID != nil {
		query.WriteString(" AND chapter_id = ?")
		args = append(args, *filter.ChapterID)
	}

	query.WriteString(" ORDER BY rowid ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []*coursegen.Quiz
	for rows.Next() {
		var q coursegen.Quiz
		var options string

		if err := rows.Scan(&q.ID, &q.ChapterID, &q.Question, &options, &q.CorrectAnswer, &q.Explanation); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
			return nil, err
		}

		quizzes = append(quizzes, &q)
	}

	return quizzes, rows.Err()
}
