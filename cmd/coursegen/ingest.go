package main

import (
	"fmt"

	"github.com/coursegen/coursegen"
)

// Run executes the ingest command: create a course for the owner, run the
// pipeline, and wait for narration to finish before exiting.
func (c *IngestCmd) Run(deps *Dependencies) error {
	user, err := ensureUser(deps, c.Email)
	if err != nil {
		return err
	}

	pipeline, dispatcher, fetcher, err := buildPipeline(deps, pipelineConfig{
		Extractor:    c.Extractor,
		Model:        c.Model,
		Voice:        c.Voice,
		AudioDir:     c.AudioDir,
		AudioBaseURL: c.AudioBaseURL,
	})
	if err != nil {
		return err
	}
	defer fetcher.Close()

	course := &coursegen.Course{
		UserID:    user.ID,
		SourceURL: c.URL,
	}
	if err := deps.Courses.CreateCourse(deps.Ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}

	result, err := pipeline.Run(deps.Ctx, course)
	if err != nil {
		status := coursegen.CourseFailed
		if _, uerr := deps.Courses.UpdateCourse(deps.Ctx, course.ID, coursegen.CourseUpdate{Status: &status}); uerr != nil {
			deps.Logger.Error("cannot mark course failed", "course_id", course.ID, "error", uerr)
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursegen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "created course %s: %d chapters, %d quizzes\n",
		course.ID, result.Chapters, result.Quizzes)

	if result.Narrations > 0 {
		fmt.Fprintf(deps.Stdout, "waiting for %d narrations...\n", result.Narrations)
	}
	return dispatcher.Close()
}

// ensureUser finds or creates the user owning CLI-created courses.
func ensureUser(deps *Dependencies, email string) (*coursegen.User, error) {
	user, err := deps.Tokens.FindUserByEmail(deps.Ctx, email)
	if coursegen.ErrorCode(err) == coursegen.ENOTFOUND {
		return deps.Tokens.CreateUser(deps.Ctx, email)
	}
	return user, err
}
