package interfaces

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/application/command"
	"classroom-service/internal/application/query"
	"classroom-service/internal/domain/entities"
)

type QuestionService interface {
	PostQuestion(ctx context.Context, actor *entities.User, classroomId uuid.UUID, postCommand *command.PostQuestionCommand) (*command.PostQuestionCommandResult, error)
	ListQuestions(ctx context.Context, classroomId uuid.UUID) (*query.QuestionListQueryResult, error)
}
