package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.CourseService = (*CourseService)(nil)

// CourseService is a mock implementation of coursegen.CourseService.
type CourseService struct {
	CreateCourseFn   func(ctx context.Context, course *coursegen.Course) error
	FindCourseByIDFn func(ctx context.Context, id string) (*coursegen.Course, error)
	FindCoursesFn    func(ctx context.Context, filter coursegen.CourseFilter) ([]*coursegen.Course, error)
	UpdateCourseFn   func(ctx context.Context, id string, upd coursegen.CourseUpdate) (*coursegen.Course, error)
}

func (s *CourseService) CreateCourse(ctx context.Context, course *coursegen.Course) error {
	return s.CreateCourseFn(ctx, course)
}

func (s *CourseService) FindCourseByID(ctx context.Context, id string) (*coursegen.Course, error) {
	return s.FindCourseByIDFn(ctx, id)
}

func (s *CourseService) FindCourses(ctx context.Context, filter coursegen.CourseFilter) ([]*coursegen.Course, error) {
	return s.FindCoursesFn(ctx, filter)
}

func (s *CourseService) UpdateCourse(ctx context.Context, id string, upd coursegen.CourseUpdate) (*coursegen.Course, error) {
	return s.UpdateCourseFn(ctx, id, upd)
}
