package events

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
)

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	userID := id.NewUserID()

	require.NoError(t, sink.Emit(context.Background(), Event{Type: TypeProfileSaved, UserID: userID}))

	got := sink.Events()
	require.Len(t, got, 1)
	assert.Equal(t, userID, got[0].UserID)
	assert.False(t, got[0].OccurredAt.IsZero())

	got[0].BirthDate = "mutated"
	assert.Empty(t, sink.Events()[0].BirthDate)
}

type failingSink struct {
	mu    sync.Mutex
	calls int
}

func (s *failingSink) Emit(context.Context, Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return errors.New("broker down")
}

func TestWorkerForwardsEvents(t *testing.T) {
	sink := NewMemorySink()
	w := NewWorker(sink, 4, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, w.Emit(ctx, Event{Type: TypeProfileSaved, UserID: id.NewUserID()}))
	require.Eventually(t, func() bool { return len(sink.Events()) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWorkerDrainsOnShutdown(t *testing.T) {
	sink := NewMemorySink()
	w := NewWorker(sink, 4, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, w.Emit(context.Background(), Event{Type: TypeProfileSaved}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)
	assert.Len(t, sink.Events(), 3)
}

func TestWorkerBufferFull(t *testing.T) {
	w := NewWorker(NewMemorySink(), 1, nil)
	require.NoError(t, w.Emit(context.Background(), Event{}))
	assert.ErrorIs(t, w.Emit(context.Background(), Event{}), ErrBufferFull)
}

func TestWorkerSurvivesSinkErrors(t *testing.T) {
	sink := &failingSink{}
	w := NewWorker(sink, 2, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, w.Emit(context.Background(), Event{}))
	require.NoError(t, w.Emit(context.Background(), Event{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = w.Run(ctx)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, 2, sink.calls)
}

// blockingSink waits for its context like a producer facing a dead broker.
type blockingSink struct{}

func (blockingSink) Emit(ctx context.Context, _ Event) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestWorkerBoundsSlowSink(t *testing.T) {
	w := NewWorker(blockingSink{}, 4, slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithEmitTimeout(20*time.Millisecond),
		WithDrainTimeout(time.Second),
	)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Emit(context.Background(), Event{}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("drain blocked on a sink that never returns")
	}
}

func TestWorkerRejectsEventsAfterShutdown(t *testing.T) {
	sink := NewMemorySink()
	w := NewWorker(sink, 4, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, w.Run(ctx), context.Canceled)

	assert.ErrorIs(t, w.Emit(context.Background(), Event{}), ErrWorkerClosed)
	assert.Empty(t, sink.Events())
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, sink.Emit(context.Background(), Event{Type: TypeProfileSaved, RequestID: "req-9"}))
	assert.Contains(t, buf.String(), `"msg":"profile_saved"`)
	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}
