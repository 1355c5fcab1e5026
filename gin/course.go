package gin

import (
	"net/http"

	"github.com/coursegen/coursegen"
	"github.com/gin-gonic/gin"
)

// handleCourseCreate creates a course in processing status for the
// authenticated user. The course has no title or chapters until ingestion
// runs; clients typically call POST /api/ingest next.
func (s *Server) handleCourseCreate(c *gin.Context) {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, coursegen.Errorf(coursegen.EINVALID, "invalid JSON body"))
		return
	}
	if req.URL == "" {
		s.error(c, coursegen.Errorf(coursegen.EINVALID, "url required"))
		return
	}

	course := &coursegen.Course{
		UserID:    userFrom(c).ID,
		SourceURL: req.URL,
	}
	if err := s.CourseService.CreateCourse(c.Request.Context(), course); err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// handleCourseList returns the authenticated user's courses.
func (s *Server) handleCourseList(c *gin.Context) {
	userID := userFrom(c).ID
	courses, err := s.CourseService.FindCourses(c.Request.Context(), coursegen.CourseFilter{UserID: &userID})
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

// handleCourseShow returns a course with its chapters in order. Courses are
// only visible to their owner.
func (s *Server) handleCourseShow(c *gin.Context) {
	id := c.Param("id")
	course, err := s.CourseService.FindCourseByID(c.Request.Context(), id)
	if err != nil {
		s.error(c, err)
		return
	}
	if course.UserID != userFrom(c).ID {
		s.error(c, coursegen.Errorf(coursegen.ENOTFOUND, "course not found"))
		return
	}

	chapters, err := s.ChapterService.FindChapters(c.Request.Context(), coursegen.ChapterFilter{CourseID: &id})
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course, "chapters": chapters})
}

// handleQuizList returns the quizzes for a chapter.
func (s *Server) handleQuizList(c *gin.Context) {
	chapterID := c.Param("id")
	quizzes, err := s.QuizService.FindQuizzes(c.Request.Context(), coursegen.QuizFilter{ChapterID: &chapterID})
	if err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes})
}
