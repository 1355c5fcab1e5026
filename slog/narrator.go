package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/coursegen/coursegen"
)

// Ensure LoggingNarrator implements coursegen.Narrator.
var _ coursegen.Narrator = (*LoggingNarrator)(nil)

// LoggingNarrator wraps a Narrator with per-chapter logging. Narration runs
// fire-and-forget, so this log line is often the only visible record of a
// chapter's audio succeeding or failing.
type LoggingNarrator struct {
	next   coursegen.Narrator
	logger *slog.Logger
}

// NewLoggingNarrator creates a new LoggingNarrator.
func NewLoggingNarrator(next coursegen.Narrator, logger *slog.Logger) *LoggingNarrator {
	return &LoggingNarrator{next: next, logger: logger}
}

// Narrate delegates to the wrapped narrator and logs the operation.
func (n *LoggingNarrator) Narrate(ctx context.Context, req coursegen.NarrationRequest) (err error) {
	defer func(begin time.Time) {
		n.logger.Info("narration",
			"chapter_id", req.ChapterID,
			"chars", len(req.Text),
			"voice", req.Voice,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.Narrate(ctx, req)
}
