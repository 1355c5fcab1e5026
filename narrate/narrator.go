// Package narrate implements the asynchronous narration subsystem: chapter
// scripts are synthesized to audio, stored keyed by chapter ID, and the
// resulting URL is attached to the chapter record.
package narrate

import (
	"context"
	"log/slog"
	"time"

	"github.com/coursegen/coursegen"
)

var _ coursegen.Narrator = (*Narrator)(nil)

// defaultRetryDelays backs off between attempts of the idempotent steps
// (synthesis and storage). The chapter update is not retried; a stale or
// missing audio URL is repaired by the next narration of the same chapter.
var defaultRetryDelays = []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

// Narrator performs narration requests end to end.
type Narrator struct {
	synthesizer coursegen.Synthesizer
	blob        coursegen.BlobStore
	chapters    coursegen.ChapterService
	delays      []time.Duration
	logger      *slog.Logger
}

// NarratorOption configures a Narrator.
type NarratorOption func(*Narrator)

// WithRetryDelays overrides the backoff schedule between retries. An empty
// schedule disables retries.
func WithRetryDelays(delays []time.Duration) NarratorOption {
	return func(n *Narrator) {
		n.delays = delays
	}
}

// WithNarratorLogger sets the logger used for retry and failure reporting.
func WithNarratorLogger(logger *slog.Logger) NarratorOption {
	return func(n *Narrator) {
		n.logger = logger
	}
}

// NewNarrator returns a Narrator that synthesizes with synthesizer, stores
// audio in blob, and records audio URLs through chapters.
func NewNarrator(synthesizer coursegen.Synthesizer, blob coursegen.BlobStore, chapters coursegen.ChapterService, opts ...NarratorOption) *Narrator {
	n := &Narrator{
		synthesizer: synthesizer,
		blob:        blob,
		chapters:    chapters,
		delays:      defaultRetryDelays,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Narrate synthesizes the request's text, stores the audio under
// audio/<chapterID>.mp3 and attaches the public URL to the chapter. The
// storage key depends only on the chapter ID, so re-narrating a chapter
// overwrites its previous audio rather than accumulating objects.
func (n *Narrator) Narrate(ctx context.Context, req coursegen.NarrationRequest) error {
	if req.ChapterID == "" {
		return coursegen.Errorf(coursegen.EINVALID, "narration chapter ID required")
	}
	if req.Text == "" {
		return coursegen.Errorf(coursegen.EINVALID, "narration text required")
	}
	voice := req.Voice
	if voice == "" {
		voice = coursegen.DefaultVoice
	}

	var audio []byte
	err := n.withRetry(ctx, "synthesize", req.ChapterID, func() error {
		var err error
		audio, err = n.synthesizer.Synthesize(ctx, req.Text, voice)
		return err
	})
	if err != nil {
		return err
	}

	key := "audio/" + req.ChapterID + ".mp3"
	err = n.withRetry(ctx, "store", req.ChapterID, func() error {
		return n.blob.Put(ctx, key, audio, "audio/mpeg")
	})
	if err != nil {
		return err
	}

	url := n.blob.PublicURL(key)
	if _, err := n.chapters.UpdateChapter(ctx, req.ChapterID, coursegen.ChapterUpdate{AudioURL: &url}); err != nil {
		return err
	}
	return nil
}

func (n *Narrator) withRetry(ctx context.Context, op, chapterID string, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if attempt >= len(n.delays) {
			return err
		}
		n.logger.Warn("narration step failed, retrying",
			"op", op, "chapter_id", chapterID, "attempt", attempt+1, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(n.delays[attempt]):
		}
	}
}
