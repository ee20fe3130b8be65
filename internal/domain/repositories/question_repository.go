package repositories

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/domain/entities"
)

type QuestionRepository interface {
	Create(ctx context.Context, question *entities.ValidatedQuestion) (*entities.Question, error)
	// FindByClassroom returns the classroom's questions newest first. An
	// unknown classroom id yields an empty slice, not an error.
	FindByClassroom(ctx context.Context, classroomId uuid.UUID) ([]entities.Question, error)
}
