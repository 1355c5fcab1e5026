package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.Completer = (*Completer)(nil)

// Completer is a mock implementation of coursegen.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req coursegen.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req coursegen.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
