// Package openai provides a text-to-speech client for the OpenAI audio API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/coursegen/coursegen"
)

// Defaults for speech synthesis requests.
const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "tts-1"
	DefaultTimeout = 60 * time.Second
)

// Ensure Synthesizer implements coursegen.Synthesizer at compile time.
var _ coursegen.Synthesizer = (*Synthesizer)(nil)

// Synthesizer implements coursegen.Synthesizer against the OpenAI
// /audio/speech endpoint. Each call is single-attempt; the narration
// subsystem owns retry policy.
type Synthesizer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithBaseURL overrides the API base URL. Useful for tests and
// OpenAI-compatible gateways.
func WithBaseURL(u string) Option {
	return func(s *Synthesizer) {
		s.baseURL = u
	}
}

// WithModel overrides the TTS model. Defaults to DefaultModel.
func WithModel(m string) Option {
	return func(s *Synthesizer) {
		s.model = m
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Synthesizer) {
		s.client = c
	}
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(apiKey string, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: DefaultTimeout}
	}
	return s
}

// speechRequest is the JSON body for the /audio/speech endpoint.
type speechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// Synthesize returns MP3 audio for the given text and voice.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if text == "" {
		return nil, coursegen.Errorf(coursegen.EINVALID, "text required")
	}
	if s.apiKey == "" {
		return nil, coursegen.Errorf(coursegen.EINVALID, "TTS API key not configured")
	}
	if voice == "" {
		voice = coursegen.DefaultVoice
	}

	body, err := json.Marshal(speechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          voice,
		ResponseFormat: "mp3",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/audio/speech", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, coursegen.Errorf(coursegen.EUNAVAILABLE, "TTS generation failed: HTTP %d: %s", resp.StatusCode, detail)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return audio, nil
}
