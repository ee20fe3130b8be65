package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
)

type ClassroomRepository struct {
	db *gorm.DB
}

func NewClassroomRepository(db *gorm.DB) repositories.ClassroomRepository {
	return &ClassroomRepository{db: db}
}

func (r *ClassroomRepository) Create(ctx context.Context, classroom *entities.ValidatedClassroom) (*entities.Classroom, error) {
	classroomEntity := classroom.GetClassroom()

	classroomModel := ClassroomModel{
		Id:        classroomEntity.Id,
		CreatedAt: classroomEntity.CreatedAt,
		Title:     classroomEntity.Title,
		TeacherId: classroomEntity.TeacherId,
	}

	if err := r.db.WithContext(ctx).Omit("Teacher", "EnrolledStudents").Create(&classroomModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, classroomEntity.Id)
}

func (r *ClassroomRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.Classroom, error) {
	var classroomModel ClassroomModel
	err := r.db.WithContext(ctx).
		Preload("EnrolledStudents").
		Where("id = ?", id).
		First(&classroomModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapClassroomToEntity(&classroomModel), nil
}

func (r *ClassroomRepository) AddStudents(ctx context.Context, classroomId uuid.UUID, students []entities.User) error {
	if len(students) == 0 {
		return nil
	}

	studentModels := make([]UserModel, 0, len(students))
	for i := range students {
		studentModels = append(studentModels, UserModel{Id: students[i].Id})
	}

	// Single transaction so concurrent enrollments on the same classroom
	// interleave as a plain set union.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		classroomModel := ClassroomModel{Id: classroomId}
		return tx.Model(&classroomModel).Association("EnrolledStudents").Append(&studentModels)
	})
}

func (r *ClassroomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ClassroomModel{}, "id = ?", id).Error
}

func mapClassroomToEntity(classroomModel *ClassroomModel) *entities.Classroom {
	return &entities.Classroom{
		Id:               classroomModel.Id,
		CreatedAt:        classroomModel.CreatedAt,
		Title:            classroomModel.Title,
		TeacherId:        classroomModel.TeacherId,
		EnrolledStudents: mapUsersToEntities(classroomModel.EnrolledStudents),
	}
}
