package coursegen

import (
	"context"
	"slices"
)

// Quiz represents a single multiple-choice question tied to a chapter.
// Quizzes are created by the ingestion pipeline and never mutated; a chapter
// may have no quizzes at all if generation failed for it.
type Quiz struct {
	ID            string   `json:"id"`
	ChapterID     string   `json:"chapterId"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Validate returns an error if the quiz contains invalid fields.
// The correct answer must be one of the options; the quiz UI compares the
// selected option string against it, so a non-member answer is unwinnable.
func (q *Quiz) Validate() error {
	if q.ChapterID == "" {
		return Errorf(EINVALID, "quiz chapter ID required")
	}
	if q.Question == "" {
		return Errorf(EINVALID, "quiz question required")
	}
	if len(q.Options) < 2 {
		return Errorf(EINVALID, "quiz requires at least two options")
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return Errorf(EINVALID, "quiz correct answer must be one of the options")
	}
	return nil
}

// QuizService represents a service for managing quizzes.
type QuizService interface {
	// CreateQuizzes inserts all quizzes in a single batch and fills in
	// generated IDs on the passed structs.
	CreateQuizzes(ctx context.Context, quizzes []*Quiz) error

	// FindQuizzes retrieves quizzes matching the filter.
	FindQuizzes(ctx context.Context, filter QuizFilter) ([]*Quiz, error)
}

// QuizFilter represents a filter for FindQuizzes.
type QuizFilter struct {
	ID        *string `json:"id"`
	ChapterID *string `json:"chapterId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
