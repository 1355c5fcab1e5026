package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/sqlite"
	"golang.org/x/time/rate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Courses  coursegen.CourseService
	Chapters coursegen.ChapterService
	Quizzes  coursegen.QuizService
	Progress coursegen.ProgressService
	Tokens   *sqlite.TokenService
	Limiter  *rate.Limiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve  ServeCmd  `cmd:"" help:"Run the HTTP API server"`
	Ingest IngestCmd `cmd:"" help:"Ingest a URL into a new course"`
	Token  TokenCmd  `cmd:"" help:"Create a user and issue an API token"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr         string `default:":8080" env:"COURSEGEN_ADDR" help:"HTTP listen address"`
	Extractor    string `default:"goquery" enum:"goquery,readability" help:"HTML text extractor"`
	Model        string `help:"Completion model override"`
	Voice        string `default:"alloy" help:"Narration voice"`
	Workers      int    `default:"4" help:"Narration worker count"`
	AudioDir     string `default:"audio-data" env:"COURSEGEN_AUDIO_DIR" help:"Directory for narration audio files"`
	AudioBaseURL string `default:"http://localhost:8080/media" env:"COURSEGEN_AUDIO_BASE_URL" help:"Public base URL for narration audio"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URL          string `arg:"" help:"Web page or YouTube URL to ingest"`
	Email        string `default:"cli@localhost" help:"Course owner email (created if missing)"`
	Extractor    string `default:"goquery" enum:"goquery,readability" help:"HTML text extractor"`
	Model        string `help:"Completion model override"`
	Voice        string `default:"alloy" help:"Narration voice"`
	AudioDir     string `default:"audio-data" env:"COURSEGEN_AUDIO_DIR" help:"Directory for narration audio files"`
	AudioBaseURL string `default:"http://localhost:8080/media" env:"COURSEGEN_AUDIO_BASE_URL" help:"Public base URL for narration audio"`
}

// TokenCmd is the "token" subcommand.
type TokenCmd struct {
	Email string `arg:"" help:"User email (created if missing)"`
}
