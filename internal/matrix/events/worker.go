package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	// ErrBufferFull is returned when the worker inbox cannot take more events.
	ErrBufferFull = errors.New("event buffer full")
	// ErrWorkerClosed is returned by Emit once Run has started shutting down.
	ErrWorkerClosed = errors.New("event worker closed")
)

const (
	defaultEmitTimeout  = 10 * time.Second
	defaultDrainTimeout = 15 * time.Second
)

// Worker decouples request handling from a slow sink. Emit enqueues and Run
// drains the inbox into the sink until ctx is cancelled.
type Worker struct {
	sink         Sink
	inbox        chan Event
	logger       *slog.Logger
	emitTimeout  time.Duration
	drainTimeout time.Duration

	mu     sync.RWMutex
	closed bool
}

type WorkerOption func(*Worker)

// WithEmitTimeout bounds a single sink call.
func WithEmitTimeout(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.emitTimeout = d
		}
	}
}

// WithDrainTimeout bounds the flush of queued events on shutdown.
func WithDrainTimeout(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.drainTimeout = d
		}
	}
}

func NewWorker(sink Sink, size int, logger *slog.Logger, opts ...WorkerOption) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Worker{
		sink:         sink,
		inbox:        make(chan Event, size),
		logger:       logger,
		emitTimeout:  defaultEmitTimeout,
		drainTimeout: defaultDrainTimeout,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Emit never blocks. It fails with ErrWorkerClosed once shutdown has begun,
// so no event is queued after the final drain.
func (w *Worker) Emit(_ context.Context, event Event) error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return ErrWorkerClosed
	}
	select {
	case w.inbox <- event:
		return nil
	default:
		return ErrBufferFull
	}
}

// Run forwards events to the sink. Sink failures are logged and dropped.
// When ctx ends the worker closes and flushes what is still queued within
// the drain timeout.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.close()
			w.drain()
			return ctx.Err()
		case event := <-w.inbox:
			w.forward(ctx, event)
		}
	}
}

func (w *Worker) close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}

func (w *Worker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), w.drainTimeout)
	defer cancel()
	for {
		select {
		case event := <-w.inbox:
			w.forward(ctx, event)
		default:
			return
		}
	}
}

func (w *Worker) forward(ctx context.Context, event Event) {
	ctx, cancel := context.WithTimeout(ctx, w.emitTimeout)
	defer cancel()
	if err := w.sink.Emit(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to publish event",
			"type", event.Type,
			"user_id", event.UserID,
			"error", err,
		)
	}
}
