// Package gemini provides an AI completion client backed by Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/coursegen/coursegen"
	"google.golang.org/genai"
)

// DefaultModel is the completion model used when the request does not
// select one.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements coursegen.Completer at compile time.
var _ coursegen.Completer = (*Completer)(nil)

// Completer implements coursegen.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client) *Completer {
	return &Completer{client: client}
}

// Complete sends the role-tagged messages to Gemini and returns the
// response text. System messages become the system instruction; user
// messages become the conversation contents.
func (c *Completer) Complete(ctx context.Context, req coursegen.CompletionRequest) (string, error) {
	if len(req.Messages) == 0 {
		return "", coursegen.Errorf(coursegen.EINVALID, "completion requires at least one message")
	}

	contents := BuildContents(req.Messages)
	if len(contents) == 0 {
		return "", coursegen.Errorf(coursegen.EINVALID, "completion requires a user message")
	}

	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	result, err := c.client.Models.GenerateContent(ctx, model, contents, BuildConfig(req.Messages))
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", coursegen.Errorf(coursegen.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for a completion request.
// All system messages are joined into a single system instruction.
func BuildConfig(messages []coursegen.Message) *genai.GenerateContentConfig {
	temp := float32(0.4)
	config := &genai.GenerateContentConfig{
		Temperature: &temp,
	}

	var system []string
	for _, m := range messages {
		if m.Role == coursegen.RoleSystem {
			system = append(system, m.Content)
		}
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: strings.Join(system, "\n\n")}},
		}
	}

	return config
}

// BuildContents converts non-system messages to Gemini contents in order.
func BuildContents(messages []coursegen.Message) []*genai.Content {
	var contents []*genai.Content
	for _, m := range messages {
		if m.Role == coursegen.RoleSystem {
			continue
		}
		contents = append(contents, &genai.Content{
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return contents
}
