package interfaces

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/application/command"
	"classroom-service/internal/application/query"
	"classroom-service/internal/domain/entities"
)

type ClassroomService interface {
	CreateClassroom(ctx context.Context, actor *entities.User, createCommand *command.CreateClassroomCommand) (*command.CreateClassroomCommandResult, error)
	GetClassroom(ctx context.Context, id uuid.UUID) (*query.ClassroomQueryResult, error)
	EnrollStudents(ctx context.Context, actor *entities.User, classroomId uuid.UUID, enrollCommand *command.EnrollStudentsCommand) (*command.EnrollStudentsCommandResult, error)
}
