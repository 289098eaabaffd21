package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
)

func TestNewProfile(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	userID := id.NewUserID()

	t.Run("valid", func(t *testing.T) {
		p, err := NewProfile(userID, "15.05.1990", numerology.GenderFemale, now)
		require.NoError(t, err)
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, "15.05.1990", p.BirthDate)
		assert.Equal(t, now, p.UpdatedAt)

		birth, err := p.Birth()
		require.NoError(t, err)
		assert.Equal(t, 1990, birth.Year)
	})

	t.Run("nil user", func(t *testing.T) {
		_, err := NewProfile(id.UserID{}, "15.05.1990", "", now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	t.Run("bad date keeps the engine error", func(t *testing.T) {
		_, err := NewProfile(userID, "31.02.1990", "", now)
		assert.ErrorIs(t, err, numerology.ErrInvalidCalendarDate)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("unknown gender", func(t *testing.T) {
		_, err := NewProfile(userID, "15.05.1990", "robot", now)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}
