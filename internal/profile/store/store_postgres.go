package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/deidexdd-hash/mysticbot/internal/numerology"
	"github.com/deidexdd-hash/mysticbot/internal/profile/models"
	id "github.com/deidexdd-hash/mysticbot/pkg/domain"
	"github.com/deidexdd-hash/mysticbot/pkg/platform/sentinel"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    UUID PRIMARY KEY,
	birth_date TEXT NOT NULL,
	gender     TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresStore persists profiles in the profiles table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the profiles table if needed.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate profiles: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	var (
		p      models.Profile
		gender string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT birth_date, gender, updated_at FROM profiles WHERE user_id = $1`,
		uuid.UUID(userID),
	).Scan(&p.BirthDate, &gender, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.UserID = userID
	p.Gender = numerology.Gender(gender)
	return &p, nil
}

func (s *PostgresStore) Put(ctx context.Context, profile *models.Profile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, birth_date, gender, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET birth_date = EXCLUDED.birth_date,
		    gender = EXCLUDED.gender,
		    updated_at = EXCLUDED.updated_at`,
		uuid.UUID(profile.UserID), profile.BirthDate, string(profile.Gender), profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("put profile: %w", err)
	}
	return nil
}
