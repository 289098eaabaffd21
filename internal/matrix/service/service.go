package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/events"
	"github.com/deidexdd-hash/mysticbot/internal/matrix/metrics"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/sentinel"
	"github.com/deidexdd-hash/mysticbot/pkg/requestcontext"
)

var tracer = otel.Tracer("mysticbot/matrix")

// reenterDate is shown to users whose birth date could not be parsed.
const reenterDate = "invalid birth date, please re-enter the date as DD.MM.YYYY"

type ProfileStore interface {
	Get(ctx context.Context, userID id.UserID) (*models.Profile, error)
	Put(ctx context.Context, profile *models.Profile) error
}

type EventPublisher interface {
	Emit(ctx context.Context, event events.Event) error
}

// Service computes matrices, forecasts and compatibility for raw dates and
// for stored user profiles.
type Service struct {
	engine    *numerology.Engine
	tables    numerology.Tables
	profiles  ProfileStore
	publisher EventPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

// New constructs a Service. The engine and profile store are required.
func New(engine *numerology.Engine, tables numerology.Tables, profiles ProfileStore, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if profiles == nil {
		return nil, errors.New("profile store is required")
	}
	s := &Service{
		engine:   engine,
		tables:   tables,
		profiles: profiles,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// loadProfile translates store errors into domain errors.
func (s *Service) loadProfile(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "profile not found, please send your birth date first")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}
	return profile, nil
}

// calculate parses a user supplied date.
func (s *Service) calculate(birthDate string) (numerology.Matrix, error) {
	m, err := s.engine.Calculate(birthDate)
	if err != nil {
		return numerology.Matrix{}, dErrors.Wrap(err, dErrors.CodeValidation, reenterDate)
	}
	return m, nil
}

// calculateStored rebuilds the matrix of a stored profile. A stored date that
// no longer parses is a data fault, not a user error.
func (s *Service) calculateStored(profile *models.Profile) (numerology.Matrix, error) {
	birth, err := profile.Birth()
	if err != nil {
		return numerology.Matrix{}, dErrors.Wrap(err, dErrors.CodeInternal, "stored birth date is corrupt")
	}
	return s.engine.CalculateFor(birth), nil
}

func (s *Service) read(m numerology.Matrix, gender numerology.Gender) *numerology.Reading {
	reading := s.engine.Read(m, s.tables, gender)
	missing := 0
	for _, d := range reading.Digits {
		if !d.Found {
			missing++
		}
	}
	s.metrics.AddMissingInterpretations(missing)
	return &reading
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
	}
	span.End()
}

func (s *Service) logFailure(ctx context.Context, msg string, err error, args ...any) {
	if dErrors.CodeOf(err) != dErrors.CodeInternal {
		return
	}
	args = append(args, "request_id", requestcontext.RequestID(ctx), "error", err)
	s.logger.ErrorContext(ctx, msg, args...)
}
