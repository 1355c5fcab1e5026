package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	coursegengin "github.com/coursegen/coursegen/gin"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	pipeline, dispatcher, fetcher, err := buildPipeline(deps, pipelineConfig{
		Extractor:    c.Extractor,
		Model:        c.Model,
		Voice:        c.Voice,
		Workers:      c.Workers,
		AudioDir:     c.AudioDir,
		AudioBaseURL: c.AudioBaseURL,
	})
	if err != nil {
		return err
	}
	defer fetcher.Close()

	server := coursegengin.NewServer()
	server.Addr = c.Addr
	server.Logger = deps.Logger
	server.TokenService = deps.Tokens
	server.CourseService = deps.Courses
	server.ChapterService = deps.Chapters
	server.QuizService = deps.Quizzes
	server.ProgressService = deps.Progress
	server.Pipeline = pipeline
	server.ServeMedia("/media", c.AudioDir)

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to start server on %q: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)

	// Block until interrupted, then drain in-flight requests and narration.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Fprintln(deps.Stdout, "shutting down")
	if err := server.Close(); err != nil {
		return err
	}
	return dispatcher.Close()
}
