package store

import (
	"context"
	"errors"
	"time"

	"github.com/deidexdd-hash/mysticbot/internal/platform/metrics"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/sentinel"
)

// Store is the contract every backend satisfies.
type Store interface {
	Get(ctx context.Context, userID id.UserID) (*models.Profile, error)
	Put(ctx context.Context, profile *models.Profile) error
}

// Instrumented records operation counts and latency for a backend.
type Instrumented struct {
	next    Store
	backend string
	metrics *metrics.Metrics
}

func NewInstrumented(next Store, backend string, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, backend: backend, metrics: m}
}

func (s *Instrumented) Get(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	start := time.Now()
	p, err := s.next.Get(ctx, userID)
	// a missing profile is an answer, not a failure
	observed := err
	if errors.Is(err, sentinel.ErrNotFound) {
		observed = nil
	}
	s.metrics.ObserveStoreOp(s.backend, "get", observed, time.Since(start))
	return p, err
}

func (s *Instrumented) Put(ctx context.Context, profile *models.Profile) error {
	start := time.Now()
	err := s.next.Put(ctx, profile)
	s.metrics.ObserveStoreOp(s.backend, "put", err, time.Since(start))
	return err
}
