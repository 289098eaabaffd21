package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/deidexdd-hash/mysticbot/internal/matrix/events"
	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
	"github.com/deidexdd-hash/mysticbot/pkg/requestcontext"
)

// SaveProfile stores or replaces the birth date of a user and emits
// profile_saved. Publisher failures are logged, never returned.
func (s *Service) SaveProfile(ctx context.Context, userID id.UserID, birthDate string, gender numerology.Gender) (_ *models.Profile, err error) {
	ctx, span := startSpan(ctx, "matrix.SaveProfile", attribute.String("user_id", userID.String()))
	defer func() { endSpan(span, err) }()

	profile, err := models.NewProfile(userID, birthDate, gender, requestcontext.Now(ctx))
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, reenterDate)
		}
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, dErrors.Wrap(err, dErrors.CodeValidation, err.Error())
		}
		return nil, err
	}

	if err := s.profiles.Put(ctx, profile); err != nil {
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to save profile")
		s.logFailure(ctx, "profile save failed", err, "user_id", userID)
		return nil, err
	}

	s.metrics.IncrementProfilesSaved()
	s.logger.InfoContext(ctx, string(events.TypeProfileSaved),
		"request_id", requestcontext.RequestID(ctx),
		"user_id", userID,
	)
	s.publish(ctx, events.Event{
		Type:       events.TypeProfileSaved,
		UserID:     profile.UserID,
		BirthDate:  profile.BirthDate,
		Gender:     string(profile.Gender),
		RequestID:  requestcontext.RequestID(ctx),
		OccurredAt: profile.UpdatedAt,
	})
	return profile, nil
}

// GetProfile returns the stored profile of a user.
func (s *Service) GetProfile(ctx context.Context, userID id.UserID) (_ *models.Profile, err error) {
	ctx, span := startSpan(ctx, "matrix.GetProfile", attribute.String("user_id", userID.String()))
	defer func() { endSpan(span, err) }()

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		s.logFailure(ctx, "profile lookup failed", err, "user_id", userID)
		return nil, err
	}
	return profile, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish event",
			"request_id", requestcontext.RequestID(ctx),
			"type", event.Type,
			"user_id", event.UserID,
			"error", err,
		)
	}
}
