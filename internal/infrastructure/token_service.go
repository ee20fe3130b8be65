package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"

	"classroom-service/internal/domain"
	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
)

const credentialCacheTTL = 24 * time.Hour

// TokenService is the credential issuer: it maps a verified identity to an
// opaque bearer value and resolves a presented value back to a user id.
// Issue is get-or-create, so a user keeps the same credential across
// logins.
type TokenService struct {
	credentials repositories.CredentialRepository
	cache       *RedisService
}

func NewTokenService(credentials repositories.CredentialRepository, cache *RedisService) *TokenService {
	return &TokenService{
		credentials: credentials,
		cache:       cache,
	}
}

func (t *TokenService) Issue(ctx context.Context, userId uuid.UUID) (string, error) {
	existing, err := t.credentials.FindByUserId(ctx, userId)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return existing.Value, nil
	}

	created, err := t.credentials.Create(ctx, entities.NewCredential(userId))
	if err != nil {
		return "", err
	}

	// Cache failures never fail the request
	_ = t.cache.SetCredential(ctx, created.Value, userId.String(), credentialCacheTTL)

	return created.Value, nil
}

func (t *TokenService) Resolve(ctx context.Context, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, domain.ErrInvalidCredential
	}

	cached, err := t.cache.GetCredential(ctx, value)
	if err == nil && cached != "" {
		if userId, parseErr := uuid.Parse(cached); parseErr == nil {
			return userId, nil
		}
	}
	// Any cache error, redis.Nil included, is a miss: fall through to the
	// database, which stays the source of truth.
	credential, err := t.credentials.FindByValue(ctx, value)
	if err != nil {
		return uuid.Nil, err
	}
	if credential == nil {
		return uuid.Nil, domain.ErrInvalidCredential
	}

	_ = t.cache.SetCredential(ctx, credential.Value, credential.UserId.String(), credentialCacheTTL)

	return credential.UserId, nil
}
