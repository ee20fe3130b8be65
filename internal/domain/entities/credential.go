package entities

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the opaque bearer value bound to a user. One per user:
// minted at signup, reused across logins, never rotated or revoked.
type Credential struct {
	Value     string
	UserId    uuid.UUID
	CreatedAt time.Time
}

func NewCredential(userId uuid.UUID) *Credential {
	return &Credential{
		Value:     uuid.NewString(),
		UserId:    userId,
		CreatedAt: time.Now(),
	}
}
