package repositories

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/domain/entities"
)

type ClassroomRepository interface {
	Create(ctx context.Context, classroom *entities.ValidatedClassroom) (*entities.Classroom, error)
	// FindById loads the classroom with its enrollment roster, or nil when absent.
	FindById(ctx context.Context, id uuid.UUID) (*entities.Classroom, error)
	// AddStudents unions students into the enrollment set. Already-enrolled
	// students are a no-op.
	AddStudents(ctx context.Context, classroomId uuid.UUID, students []entities.User) error
	// Delete removes the classroom and, through the schema cascade, its questions.
	Delete(ctx context.Context, id uuid.UUID) error
}
