package narrate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/coursegen/coursegen"
	"golang.org/x/sync/errgroup"
)

var _ coursegen.NarrationDispatcher = (*Dispatcher)(nil)

const (
	defaultQueueSize = 64
	defaultWorkers   = 4
)

// Dispatcher fans narration requests out to a fixed pool of workers over a
// bounded queue. Dispatch never blocks: when the queue is full the request
// is dropped and logged, leaving the chapter without audio rather than
// stalling course creation.
type Dispatcher struct {
	narrator coursegen.Narrator
	queue    chan coursegen.NarrationRequest
	logger   *slog.Logger

	g         *errgroup.Group
	closeOnce sync.Once
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithQueueSize sets the queue capacity.
func WithQueueSize(n int) DispatcherOption {
	return func(d *Dispatcher) {
		d.queue = make(chan coursegen.NarrationRequest, n)
	}
}

// WithDispatcherLogger sets the logger used for drop and failure reporting.
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher starts workers consuming from the queue and returns the
// dispatcher. Workers run against a background context; in-flight narration
// survives request cancellation and is only awaited by Close.
func NewDispatcher(narrator coursegen.Narrator, workers int, opts ...DispatcherOption) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	d := &Dispatcher{
		narrator: narrator,
		queue:    make(chan coursegen.NarrationRequest, defaultQueueSize),
		logger:   slog.New(slog.DiscardHandler),
		g:        &errgroup.Group{},
	}
	for _, opt := range opts {
		opt(d)
	}

	for i := 0; i < workers; i++ {
		d.g.Go(d.work)
	}
	return d
}

func (d *Dispatcher) work() error {
	for req := range d.queue {
		if err := d.narrator.Narrate(context.Background(), req); err != nil {
			d.logger.Error("narration failed", "chapter_id", req.ChapterID, "error", err)
		}
	}
	return nil
}

// Dispatch enqueues a narration request without blocking. Full queue drops
// the request; the caller holds no reference to in-flight narration and is
// never notified either way.
func (d *Dispatcher) Dispatch(req coursegen.NarrationRequest) {
	select {
	case d.queue <- req:
	default:
		d.logger.Warn("narration queue full, dropping request", "chapter_id", req.ChapterID)
	}
}

// Close stops accepting requests, drains the queue and waits for in-flight
// narration to finish. Dispatch after Close panics.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	return d.g.Wait()
}
