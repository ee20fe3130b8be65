package repositories

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/domain/entities"
)

// CredentialRepository is the keyed store behind the token issuer:
// credential value -> user id, with one credential per user.
type CredentialRepository interface {
	Create(ctx context.Context, credential *entities.Credential) (*entities.Credential, error)
	FindByValue(ctx context.Context, value string) (*entities.Credential, error)
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entities.Credential, error)
}
