package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/coursegen/coursegen"
)

// Ensure LoggingCompleter implements coursegen.Completer.
var _ coursegen.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with per-request logging. Prompt and
// response bodies are logged by size only; they routinely contain entire web
// pages.
type LoggingCompleter struct {
	next   coursegen.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next coursegen.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the operation.
func (c *LoggingCompleter) Complete(ctx context.Context, req coursegen.CompletionRequest) (content string, err error) {
	promptChars := 0
	for _, m := range req.Messages {
		promptChars += len(m.Content)
	}
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"model", req.Model,
			"messages", len(req.Messages),
			"prompt_chars", promptChars,
			"response_chars", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req)
}
