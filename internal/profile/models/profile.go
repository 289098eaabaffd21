package models

import (
	"time"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
)

// Profile is the stored input of the engine for one user.
//
// Invariants:
//   - UserID is not nil
//   - BirthDate is a valid DD.MM.YYYY calendar date
//   - Gender is male, female or empty
type Profile struct {
	UserID    id.UserID         `json:"user_id"`
	BirthDate string            `json:"birth_date"`
	Gender    numerology.Gender `json:"gender,omitempty"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NewProfile validates the invariants above. A bad birth date keeps the
// engine's CodeValidation error so callers can ask the user to re-enter it.
func NewProfile(userID id.UserID, birthDate string, gender numerology.Gender, now time.Time) (*Profile, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user id is required")
	}
	birth, err := numerology.ParseBirthDate(birthDate)
	if err != nil {
		return nil, err
	}
	parsed, err := numerology.ParseGender(string(gender))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvariantViolation, "gender must be male or female")
	}
	return &Profile{
		UserID:    userID,
		BirthDate: birth.String(),
		Gender:    parsed,
		UpdatedAt: now,
	}, nil
}

// Birth parses the stored birth date.
func (p *Profile) Birth() (numerology.BirthDate, error) {
	return numerology.ParseBirthDate(p.BirthDate)
}
