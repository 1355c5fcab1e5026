package gin

import (
	"net/http"
	"time"

	"github.com/coursegen/coursegen"
	"github.com/gin-gonic/gin"
)

// handleProgressUpsert records the authenticated user's completion state for
// a chapter. Repeated calls replace the previous record.
func (s *Server) handleProgressUpsert(c *gin.Context) {
	var req struct {
		ChapterID string `json:"chapterId"`
		Completed bool   `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.error(c, coursegen.Errorf(coursegen.EINVALID, "invalid JSON body"))
		return
	}

	progress := &coursegen.Progress{
		UserID:    userFrom(c).ID,
		ChapterID: req.ChapterID,
		Completed: req.Completed,
	}
	if req.Completed {
		progress.CompletedAt = time.Now().UTC()
	}
	if err := progress.Validate(); err != nil {
		s.error(c, err)
		return
	}

	if err := s.ProgressService.UpsertProgress(c.Request.Context(), progress); err != nil {
		s.error(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
