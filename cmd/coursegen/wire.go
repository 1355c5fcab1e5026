package main

import (
	"fmt"
	"os"

	"github.com/coursegen/coursegen"
	"github.com/coursegen/coursegen/fs"
	"github.com/coursegen/coursegen/gemini"
	"github.com/coursegen/coursegen/goquery"
	coursegenhttp "github.com/coursegen/coursegen/http"
	"github.com/coursegen/coursegen/ingest"
	"github.com/coursegen/coursegen/narrate"
	"github.com/coursegen/coursegen/openai"
	"github.com/coursegen/coursegen/readability"
	coursegenslog "github.com/coursegen/coursegen/slog"
	"google.golang.org/genai"
)

// pipelineConfig is the subset of command flags the pipeline wiring needs.
type pipelineConfig struct {
	Extractor    string
	Model        string
	Voice        string
	Workers      int
	AudioDir     string
	AudioBaseURL string
}

// buildPipeline wires the full ingestion stack: fetcher, extractor, Gemini
// completer, OpenAI speech synthesis, filesystem audio storage and the
// narration dispatcher. The returned fetcher and dispatcher must be closed
// by the caller.
func buildPipeline(deps *Dependencies, cfg pipelineConfig) (*ingest.Pipeline, *narrate.Dispatcher, coursegen.Fetcher, error) {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		fmt.Fprintln(deps.Stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, nil, nil, fmt.Errorf("GEMINI_API_KEY not set")
	}
	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		fmt.Fprintln(deps.Stderr, "OPENAI_API_KEY environment variable not set. Narration audio requires an OpenAI API key.")
		return nil, nil, nil, fmt.Errorf("OPENAI_API_KEY not set")
	}

	client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
		APIKey:  geminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, nil, nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	var extractor coursegen.Extractor
	switch cfg.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = goquery.NewExtractor()
	}

	fetcher := coursegenslog.NewLoggingFetcher(coursegenhttp.NewFetcher(), deps.Logger)
	completer := coursegenslog.NewLoggingCompleter(gemini.NewCompleter(client), deps.Logger)

	blob := fs.NewBlobStore(cfg.AudioDir, cfg.AudioBaseURL)
	narrator := coursegenslog.NewLoggingNarrator(
		narrate.NewNarrator(
			openai.NewSynthesizer(openaiKey),
			blob,
			deps.Chapters,
			narrate.WithNarratorLogger(deps.Logger),
		),
		deps.Logger,
	)
	dispatcher := narrate.NewDispatcher(narrator, cfg.Workers,
		narrate.WithDispatcherLogger(deps.Logger))

	pipeline := &ingest.Pipeline{
		Fetcher:   fetcher,
		Extractor: extractor,
		Completer: completer,
		Courses:   deps.Courses,
		Chapters:  deps.Chapters,
		Quizzes:   deps.Quizzes,
		Narration: dispatcher,
		Limiter:   deps.Limiter,
		Model:     cfg.Model,
		Voice:     cfg.Voice,
		Logger:    deps.Logger,
	}
	return pipeline, dispatcher, fetcher, nil
}
