package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "github.com/deidexdd-hash/mysticbot/pkg/domain-errors"
)

// UserID identifies the owner of a stored birth profile.
type UserID uuid.UUID

// ParseUserID validates a user identifier at a trust boundary. Empty, malformed,
// and nil UUIDs are rejected with CodeInvalidInput.
func ParseUserID(s string) (UserID, error) {
	if strings.TrimSpace(s) == "" {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user id is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user id must be a valid uuid")
	}
	if parsed == uuid.Nil {
		return UserID{}, dErrors.New(dErrors.CodeInvalidInput, "user id must not be nil")
	}
	return UserID(parsed), nil
}

// NewUserID returns a fresh random id.
func NewUserID() UserID {
	return UserID(uuid.New())
}

func (id UserID) String() string {
	return uuid.UUID(id).String()
}

func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id UserID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *UserID) UnmarshalText(data []byte) error {
	parsed, err := ParseUserID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
