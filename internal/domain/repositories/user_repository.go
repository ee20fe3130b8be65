package repositories

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	// FindStudentsByIds returns the users among ids whose role is student.
	// Unknown ids and non-student ids are simply absent from the result.
	FindStudentsByIds(ctx context.Context, ids []uuid.UUID) ([]entities.User, error)
}
