package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.QuizService = (*QuizService)(nil)

// QuizService is a mock implementation of coursegen.QuizService.
type QuizService struct {
	CreateQuizzesFn func(ctx context.Context, quizzes []*coursegen.Quiz) error
	FindQuizzesFn   func(ctx context.Context, filter coursegen.QuizFilter) ([]*coursegen.Quiz, error)
}

func (s *QuizService) CreateQuizzes(ctx context.Context, quizzes []*coursegen.Quiz) error {
	return s.CreateQuizzesFn(ctx, quizzes)
}

func (s *QuizService) FindQuizzes(ctx context.Context, filter coursegen.QuizFilter) ([]*coursegen.Quiz, error) {
	return s.FindQuizzesFn(ctx, filter)
}
