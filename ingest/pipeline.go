// Package ingest turns a source URL into a complete course: fetched and
// extracted text, an AI-generated outline persisted as ordered chapters,
// fire-and-forget narration, and per-chapter quizzes.
package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coursegen/coursegen"
	"golang.org/x/time/rate"
)

// Pipeline runs content ingestion for one course at a time. All collaborators
// are injected; a zero Limiter or Logger disables pacing or logging.
type Pipeline struct {
	Fetcher   coursegen.Fetcher
	Extractor coursegen.Extractor
	Completer coursegen.Completer
	Courses   coursegen.CourseService
	Chapters  coursegen.ChapterService
	Quizzes   coursegen.QuizService
	Narration coursegen.NarrationDispatcher

	// Limiter paces AI completion calls. Nil means no pacing.
	Limiter *rate.Limiter

	// Model overrides the completer's default model when non-empty.
	Model string

	// Voice selects the narration voice. Empty means coursegen.DefaultVoice.
	Voice string

	Logger *slog.Logger
}

// Result summarizes what a pipeline run produced.
type Result struct {
	Chapters   int `json:"chapters"`
	Quizzes    int `json:"quizzes"`
	Narrations int `json:"narrations"`
}

// Run ingests the course's source URL end to end. The course must already
// exist in processing status. Failures before chapters are persisted are
// fatal and returned; quiz generation failures degrade to chapters without
// quizzes; narration is dispatched fire-and-forget and cannot fail the run.
// On success the course is marked completed. Run never marks the course
// failed; that is the caller's decision on error.
func (p *Pipeline) Run(ctx context.Context, course *coursegen.Course) (*Result, error) {
	logger := p.logger().With("course_id", course.ID, "url", course.SourceURL)

	text, videoID, err := p.sourceText(ctx, course.SourceURL)
	if err != nil {
		return nil, err
	}
	logger.Info("extracted source text", "chars", len(text), "video_id", videoID)

	outline, err := p.generateOutline(ctx, text)
	if err != nil {
		return nil, err
	}
	logger.Info("generated outline", "title", outline.Title, "chapters", len(outline.Chapters))

	if _, err := p.Courses.UpdateCourse(ctx, course.ID, coursegen.CourseUpdate{
		Title:       &outline.Title,
		Description: &outline.Description,
	}); err != nil {
		return nil, fmt.Errorf("update course metadata: %w", err)
	}

	chapters := buildChapters(course.ID, outline, videoID)
	if err := p.Chapters.CreateChapters(ctx, chapters); err != nil {
		return nil, fmt.Errorf("create chapters: %w", err)
	}

	result := &Result{Chapters: len(chapters)}

	voice := p.Voice
	if voice == "" {
		voice = coursegen.DefaultVoice
	}
	for _, ch := range chapters {
		if ch.Script == "" {
			continue
		}
		p.Narration.Dispatch(coursegen.NarrationRequest{
			ChapterID: ch.ID,
			Text:      ch.Script,
			Voice:     voice,
		})
		result.Narrations++
	}

	for _, ch := range chapters {
		n, err := p.generateQuizzes(ctx, ch)
		if err != nil {
			// A chapter without quizzes is still a usable chapter.
			logger.Warn("quiz generation failed", "chapter_id", ch.ID, "error", err)
			continue
		}
		result.Quizzes += n
	}

	status := coursegen.CourseCompleted
	if _, err := p.Courses.UpdateCourse(ctx, course.ID, coursegen.CourseUpdate{Status: &status}); err != nil {
		return nil, fmt.Errorf("mark course completed: %w", err)
	}

	logger.Info("course ingested", "chapters", result.Chapters, "quizzes", result.Quizzes)
	return result, nil
}

// sourceText produces the text handed to the outline generator. YouTube
// links skip fetching entirely; page HTML tells the model nothing useful
// about a video, so the prompt references the video instead.
func (p *Pipeline) sourceText(ctx context.Context, url string) (text, videoID string, err error) {
	if id, ok := coursegen.YouTubeVideoID(url); ok {
		return fmt.Sprintf("This content is a YouTube video (video ID %s) available at %s. "+
			"Create a course that guides a learner through watching and understanding this video.", id, url), id, nil
	}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", "", fmt.Errorf("fetch source: %w", err)
	}
	text, err = p.Extractor.Extract(html)
	if err != nil {
		return "", "", fmt.Errorf("extract text: %w", err)
	}
	return text, "", nil
}

func (p *Pipeline) generateOutline(ctx context.Context, text string) (*coursegen.Outline, error) {
	content, err := p.complete(ctx, OutlineMessages(text))
	if err != nil {
		return nil, fmt.Errorf("outline completion: %w", err)
	}
	return ParseOutline(content)
}

// generateQuizzes generates, parses and persists quizzes for one chapter,
// returning the number created.
func (p *Pipeline) generateQuizzes(ctx context.Context, chapter *coursegen.Chapter) (int, error) {
	content, err := p.complete(ctx, QuizMessages(chapter))
	if err != nil {
		return 0, err
	}

	quizzes, skipped, err := ParseQuizzes(chapter.ID, content)
	if err != nil {
		return 0, err
	}
	if skipped > 0 {
		p.logger().Warn("skipped invalid quizzes", "chapter_id", chapter.ID, "skipped", skipped)
	}
	if len(quizzes) == 0 {
		return 0, nil
	}

	if err := p.Quizzes.CreateQuizzes(ctx, quizzes); err != nil {
		return 0, err
	}
	return len(quizzes), nil
}

func (p *Pipeline) complete(ctx context.Context, messages []coursegen.Message) (string, error) {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	return p.Completer.Complete(ctx, coursegen.CompletionRequest{
		Model:    p.Model,
		Messages: messages,
	})
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// buildChapters converts outline drafts into chapter records with contiguous
// zero-based order indices. When the source is a YouTube video every chapter
// carries the embeddable player URL.
func buildChapters(courseID string, outline *coursegen.Outline, videoID string) []*coursegen.Chapter {
	videoURL := ""
	if videoID != "" {
		videoURL = coursegen.YouTubeEmbedURL(videoID)
	}

	chapters := make([]*coursegen.Chapter, len(outline.Chapters))
	for i, draft := range outline.Chapters {
		chapters[i] = &coursegen.Chapter{
			CourseID:   courseID,
			Title:      draft.Title,
			Content:    draft.Content,
			Script:     draft.Script,
			OrderIndex: i,
			VideoURL:   videoURL,
		}
	}
	return chapters
}
