package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/metrics"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
)

// Compatibility is the comparison of two matrices, kept with its inputs.
type Compatibility struct {
	First  numerology.Matrix
	Second numerology.Matrix
	Result numerology.CompatibilityResult
}

// CompatibilityForDates compares two birth dates.
func (s *Service) CompatibilityForDates(ctx context.Context, first, second string) (_ *Compatibility, err error) {
	_, span := startSpan(ctx, "matrix.CompatibilityForDates")
	defer func() { endSpan(span, err) }()
	start := time.Now()

	a, err := s.calculate(first)
	if err != nil {
		return nil, err
	}
	b, err := s.calculate(second)
	if err != nil {
		return nil, err
	}
	result := s.compare(a, b)
	s.metrics.ObserveReading(metrics.KindCompatibility, start)
	return result, nil
}

// CompatibilityForUsers loads both profiles concurrently and compares them.
// The first failing lookup cancels the other.
func (s *Service) CompatibilityForUsers(ctx context.Context, userID, otherID id.UserID) (_ *Compatibility, err error) {
	ctx, span := startSpan(ctx, "matrix.CompatibilityForUsers",
		attribute.String("user_id", userID.String()),
		attribute.String("other_id", otherID.String()),
	)
	defer func() { endSpan(span, err) }()
	start := time.Now()

	var first, second *models.Profile
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.loadProfile(gctx, userID)
		first = p
		return err
	})
	g.Go(func() error {
		p, err := s.loadProfile(gctx, otherID)
		second = p
		return err
	})
	if err := g.Wait(); err != nil {
		s.logFailure(ctx, "compatibility failed", err, "user_id", userID, "other_id", otherID)
		return nil, err
	}

	a, err := s.calculateStored(first)
	if err != nil {
		return nil, err
	}
	b, err := s.calculateStored(second)
	if err != nil {
		return nil, err
	}
	result := s.compare(a, b)
	s.metrics.ObserveReading(metrics.KindCompatibility, start)
	return result, nil
}

func (s *Service) compare(a, b numerology.Matrix) *Compatibility {
	return &Compatibility{
		First:  a,
		Second: b,
		Result: s.engine.Compatibility(a, b),
	}
}
