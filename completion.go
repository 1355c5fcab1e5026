package coursegen

import "context"

// Message roles for completion requests.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest describes a request to the AI completion service.
type CompletionRequest struct {
	// Model selects the completion model. Implementations fall back to
	// their default model when empty.
	Model string `json:"model"`

	// Messages is the ordered list of role-tagged messages.
	Messages []Message `json:"messages"`
}

// Completer sends prompts to an AI text-completion service.
// The returned content is free-form text which may embed a JSON value;
// callers are responsible for locating and parsing it.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
