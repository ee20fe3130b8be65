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

type ClassroomService struct {
	classroomRepo repositories.ClassroomRepository
	userRepo      repositories.UserRepository
}

func NewClassroomService(classroomRepo repositories.ClassroomRepository, userRepo repositories.UserRepository) interfaces.ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		userRepo:      userRepo,
	}
}

func (s *ClassroomService) CreateClassroom(ctx context.Context, actor *entities.User, createCommand *command.CreateClassroomCommand) (*command.CreateClassroomCommandResult, error) {
	if !access.IsTeacherRole(actor) {
		return nil, domain.ErrNotTeacher
	}

	newClassroom := entities.NewClassroom(createCommand.Title, actor.Id)
	validatedClassroom, err := entities.NewValidatedClassroom(newClassroom)
	if err != nil {
		return nil, err
	}

	createdClassroom, err := s.classroomRepo.Create(ctx, validatedClassroom)
	if err != nil {
		return nil, err
	}

	return &command.CreateClassroomCommandResult{
		Result: mapper.NewClassroomResultFromEntity(createdClassroom),
	}, nil
}

func (s *ClassroomService) GetClassroom(ctx context.Context, id uuid.UUID) (*query.ClassroomQueryResult, error) {
	classroom, err := s.classroomRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if classroom == nil {
		return nil, domain.ErrClassroomNotFound
	}

	return &query.ClassroomQueryResult{
		Result: mapper.NewClassroomResultFromEntity(classroom),
	}, nil
}

func (s *ClassroomService) EnrollStudents(ctx context.Context, actor *entities.User, classroomId uuid.UUID, enrollCommand *command.EnrollStudentsCommand) (*command.EnrollStudentsCommandResult, error) {
	if !access.IsTeacherRole(actor) {
		return nil, domain.ErrNotTeacher
	}

	classroom, err := s.classroomRepo.FindById(ctx, classroomId)
	if err != nil {
		return nil, err
	}
	if classroom == nil {
		return nil, domain.ErrClassroomNotFound
	}

	// A teacher who does not own the classroom is rejected the same way a
	// student would be.
	if !access.OwnsClassroom(actor, classroom) {
		return nil, domain.ErrNotClassroomOwner
	}

	// Unknown ids and ids of non-student users are silently dropped, not
	// reported: enrollment keeps whatever actually is a student.
	students, err := s.userRepo.FindStudentsByIds(ctx, enrollCommand.StudentIds)
	if err != nil {
		return nil, err
	}

	if err := s.classroomRepo.AddStudents(ctx, classroomId, students); err != nil {
		return nil, err
	}

	updatedClassroom, err := s.classroomRepo.FindById(ctx, classroomId)
	if err != nil {
		return nil, err
	}

	return &command.EnrollStudentsCommandResult{
		Message:       "Students added successfully",
		EnrolledCount: len(students),
		Classroom:     mapper.NewClassroomResultFromEntity(updatedClassroom),
	}, nil
}
