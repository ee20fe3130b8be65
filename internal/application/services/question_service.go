package services

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/application/command"
	"classroom-service/internal/application/interfaces"
	"classroom-service/internal/application/mapper"
	"classroom-service/internal/application/query"
	"classroom-service/internal/domain"
	"classroom-service/internal/domain/access"
	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
)

type QuestionService struct {
	questionRepo  repositories.QuestionRepository
	classroomRepo repositories.ClassroomRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, classroomRepo repositories.ClassroomRepository) interfaces.QuestionService {
	return &QuestionService{
		questionRepo:  questionRepo,
		classroomRepo: classroomRepo,
	}
}

func (s *QuestionService) PostQuestion(ctx context.Context, actor *entities.User, classroomId uuid.UUID, postCommand *command.PostQuestionCommand) (*command.PostQuestionCommandResult, error) {
	if !access.IsStudentRole(actor) {
		return nil, domain.ErrNotStudent
	}

	classroom, err := s.classroomRepo.FindById(ctx, classroomId)
	if err != nil {
		return nil, err
	}
	if classroom == nil {
		return nil, domain.ErrClassroomNotFound
	}

	if !access.IsEnrolled(actor, classroom) {
		return nil, domain.ErrNotEnrolled
	}

	newQuestion := entities.NewQuestion(postCommand.Text, actor.Id, classroomId)
	validatedQuestion, err := entities.NewValidatedQuestion(newQuestion)
	if err != nil {
		return nil, err
	}

	createdQuestion, err := s.questionRepo.Create(ctx, validatedQuestion)
	if err != nil {
		return nil, err
	}

	return &command.PostQuestionCommandResult{
		Result: mapper.NewQuestionResultFromEntity(createdQuestion),
	}, nil
}

// ListQuestions is the public read path: no credential, no role check, and
// an unknown classroom id yields an empty list rather than a not-found
// error.
func (s *QuestionService) ListQuestions(ctx context.Context, classroomId uuid.UUID) (*query.QuestionListQueryResult, error) {
	questions, err := s.questionRepo.FindByClassroom(ctx, classroomId)
	if err != nil {
		return nil, err
	}

	return &query.QuestionListQueryResult{
		Results: mapper.NewQuestionResultsFromEntities(questions),
	}, nil
}
