package mock

import (
	"context"

	"github.com/coursegen/coursegen"
)

var _ coursegen.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of coursegen.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, text, voice string) ([]byte, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	return s.SynthesizeFn(ctx, text, voice)
}

var _ coursegen.Narrator = (*Narrator)(nil)

// Narrator is a mock implementation of coursegen.Narrator.
type Narrator struct {
	NarrateFn func(ctx context.Context, req coursegen.NarrationRequest) error
}

func (n *Narrator) Narrate(ctx context.Context, req coursegen.NarrationRequest) error {
	return n.NarrateFn(ctx, req)
}

var _ coursegen.NarrationDispatcher = (*NarrationDispatcher)(nil)

// NarrationDispatcher is a mock implementation of
// coursegen.NarrationDispatcher.
type NarrationDispatcher struct {
	DispatchFn func(req coursegen.NarrationRequest)
}

func (d *NarrationDispatcher) Dispatch(req coursegen.NarrationRequest) {
	d.DispatchFn(req)
}
