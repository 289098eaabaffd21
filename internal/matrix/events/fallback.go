package events

import (
	"context"
	"log/slog"

	"github.com/deidexdd-hash/mysticbot/pkg/platform/circuit"
)

// FallbackSink emits to primary and, once the breaker opens, hands failed
// events to fallback until primary recovers.
type FallbackSink struct {
	primary  Sink
	fallback Sink
	breaker  *circuit.Breaker
	logger   *slog.Logger
}

func NewFallbackSink(primary, fallback Sink, breaker *circuit.Breaker, logger *slog.Logger) *FallbackSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackSink{primary: primary, fallback: fallback, breaker: breaker, logger: logger}
}

func (s *FallbackSink) Emit(ctx context.Context, event Event) error {
	err := s.primary.Emit(ctx, event)
	if err == nil {
		if _, change := s.breaker.RecordSuccess(); change.Closed {
			s.logger.InfoContext(ctx, "event sink recovered", "sink", s.breaker.Name())
		}
		return nil
	}

	useFallback, change := s.breaker.RecordFailure()
	if change.Opened {
		s.logger.WarnContext(ctx, "event sink degraded, using fallback",
			"sink", s.breaker.Name(),
			"error", err,
		)
	}
	if !useFallback {
		return err
	}
	// ctx may have expired on the primary attempt
	return s.fallback.Emit(context.WithoutCancel(ctx), event)
}
