package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/metrics"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
	"github.com/deidexdd-hash/mysticbot/pkg/requestcontext"
)

const maxYear = 9999

// ReadingForDate computes the matrix of birthDate and resolves it against the
// interpretation tables.
func (s *Service) ReadingForDate(ctx context.Context, birthDate string, gender numerology.Gender) (_ *numerology.Reading, err error) {
	_, span := startSpan(ctx, "matrix.ReadingForDate")
	defer func() { endSpan(span, err) }()
	start := time.Now()

	m, err := s.calculate(birthDate)
	if err != nil {
		return nil, err
	}
	reading := s.read(m, gender)
	s.metrics.ObserveReading(metrics.KindMatrix, start)
	return reading, nil
}

// ReadingForUser computes the reading of a stored profile, using the
// profile's gender.
func (s *Service) ReadingForUser(ctx context.Context, userID id.UserID) (_ *numerology.Reading, err error) {
	ctx, span := startSpan(ctx, "matrix.ReadingForUser", attribute.String("user_id", userID.String()))
	defer func() { endSpan(span, err) }()
	start := time.Now()

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "reading failed", err, "user_id", userID)
		return nil, err
	}
	m, err := s.calculateStored(profile)
	if err != nil {
		s.logFailure(ctx, "reading failed", err, "user_id", userID)
		return nil, err
	}
	reading := s.read(m, profile.Gender)
	s.metrics.ObserveReading(metrics.KindMatrix, start)
	return reading, nil
}

// ForecastForDate computes the personal year of birthDate in year. A zero
// year means the current year of the request clock.
func (s *Service) ForecastForDate(ctx context.Context, birthDate string, year int) (_ *numerology.YearForecast, err error) {
	_, span := startSpan(ctx, "matrix.ForecastForDate", attribute.Int("year", year))
	defer func() { endSpan(span, err) }()
	start := time.Now()

	year, err = s.targetYear(ctx, year)
	if err != nil {
		return nil, err
	}
	birth, err := numerology.ParseBirthDate(birthDate)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, reenterDate)
	}
	forecast := s.engine.Forecast(birth, year, s.tables.Forecasts)
	s.metrics.ObserveReading(metrics.KindForecast, start)
	return &forecast, nil
}

// ForecastForUser is ForecastForDate for a stored profile.
func (s *Service) ForecastForUser(ctx context.Context, userID id.UserID, year int) (_ *numerology.YearForecast, err error) {
	ctx, span := startSpan(ctx, "matrix.ForecastForUser",
		attribute.String("user_id", userID.String()),
		attribute.Int("year", year),
	)
	defer func() { endSpan(span, err) }()
	start := time.Now()

	year, err = s.targetYear(ctx, year)
	if err != nil {
		return nil, err
	}
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "forecast failed", err, "user_id", userID)
		return nil, err
	}
	birth, err := profile.Birth()
	if err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "stored birth date is corrupt")
		s.logFailure(ctx, "forecast failed", err, "user_id", userID)
		return nil, err
	}
	forecast := s.engine.Forecast(birth, year, s.tables.Forecasts)
	s.metrics.ObserveReading(metrics.KindForecast, start)
	return &forecast, nil
}

func (s *Service) targetYear(ctx context.Context, year int) (int, error) {
	if year == 0 {
		return requestcontext.Now(ctx).Year(), nil
	}
	if year < 1 || year > maxYear {
		return 0, dErrors.New(dErrors.CodeValidation, "year must be between 1 and 9999")
	}
	return year, nil
}
