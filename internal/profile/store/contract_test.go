package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/sentinel"
)

// runStoreContract exercises the behaviour every backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

	t.Run("unknown user is not found", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, id.NewUserID())
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		p, err := models.NewProfile(id.NewUserID(), "15.05.1990", numerology.GenderMale, now)
		require.NoError(t, err)
		require.NoError(t, s.Put(ctx, p))

		got, err := s.Get(ctx, p.UserID)
		require.NoError(t, err)
		assert.Equal(t, p.UserID, got.UserID)
		assert.Equal(t, "15.05.1990", got.BirthDate)
		assert.Equal(t, numerology.GenderMale, got.Gender)
		assert.True(t, now.Equal(got.UpdatedAt))
	})

	t.Run("put replaces the previous date", func(t *testing.T) {
		s := newStore(t)
		userID := id.NewUserID()
		first, err := models.NewProfile(userID, "15.05.1990", "", now)
		require.NoError(t, err)
		second, err := models.NewProfile(userID, "29.02.2000", numerology.GenderFemale, now.Add(time.Hour))
		require.NoError(t, err)

		require.NoError(t, s.Put(ctx, first))
		require.NoError(t, s.Put(ctx, second))

		got, err := s.Get(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, "29.02.2000", got.BirthDate)
		assert.Equal(t, numerology.GenderFemale, got.Gender)
	})
}
