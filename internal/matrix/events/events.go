// Package events carries profile changes out of the matrix service.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
)

// Type names an event.
type Type string

const (
	TypeProfileSaved Type = "profile_saved"
)

// Event is transport-agnostic so sinks can fan out.
type Event struct {
	Type       Type      `json:"type"`
	UserID     id.UserID `json:"user_id"`
	BirthDate  string    `json:"birth_date"`
	Gender     string    `json:"gender,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Sink accepts events.
type Sink interface {
	Emit(ctx context.Context, event Event) error
}

// MemorySink appends events to a slice. Used in development and tests.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Emit(_ context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// LogSink writes events to a structured logger. Used when no broker is
// configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, string(event.Type),
		"user_id", event.UserID,
		"request_id", event.RequestID,
		"log_type", "event",
	)
	return nil
}
