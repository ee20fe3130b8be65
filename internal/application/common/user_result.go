package common

import (
	"time"

	"github.com/google/uuid"
)

// UserResult is the safe user shape returned to callers. It never carries
// the password hash.
type UserResult struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
}
