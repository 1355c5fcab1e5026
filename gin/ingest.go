package gin

import (
	"net/http"

	"github.com/coursegen/coursegen"
	"github.com/gin-gonic/gin"
)

// handleIngest runs the ingestion pipeline synchronously for an existing
// course. On pipeline failure the course is marked failed before the error
// is returned; the pipeline itself never writes the failed status.
func (s *Server) handleIngest(c *gin.Context) {
	var req struct {
		URL      string `json:"url"`
		CourseID string `json:"courseId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, coursegen.Errorf(coursegen.EINVALID, "invalid JSON body"))
		return
	}
	if req.CourseID == "" {
		s.error(c, coursegen.Errorf(coursegen.EINVALID, "courseId required"))
		return
	}

	ctx := c.Request.Context()
	course, err := s.CourseService.FindCourseByID(ctx, req.CourseID)
	if err != nil {
		s.error(c, err)
		return
	}
	if course.UserID != userFrom(c).ID {
		s.error(c, coursegen.Errorf(coursegen.ENOTFOUND, "course not found"))
		return
	}
	if req.URL != "" {
		course.SourceURL = req.URL
	}

	result, err := s.Pipeline.Run(ctx, course)
	if err != nil {
		s.failCourse(c, course.ID)
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "chapters": result.Chapters})
}

// failCourse marks a course failed, best effort. Ingestion already failed at
// this point; a second failure only loses the status update.
func (s *Server) failCourse(c *gin.Context, id string) {
	status := coursegen.CourseFailed
	if _, err := s.CourseService.UpdateCourse(c.Request.Context(), id, coursegen.CourseUpdate{Status: &status}); err != nil {
		s.Logger.Error("cannot mark course failed", "course_id", id, "error", err)
	}
}
