package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) Create(ctx context.Context, question *entities.ValidatedQuestion) (*entities.Question, error) {
	questionEntity := question.GetQuestion()

	questionModel := QuestionModel{
		Text:        questionEntity.Text,
		StudentId:   questionEntity.StudentId,
		ClassroomId: questionEntity.ClassroomId,
	}

	if err := r.db.WithContext(ctx).Omit("Classroom").Create(&questionModel).Error; err != nil {
		return nil, err
	}

	return mapQuestionToEntity(&questionModel), nil
}

func (r *QuestionRepository) FindByClassroom(ctx context.Context, classroomId uuid.UUID) ([]entities.Question, error) {
	var questionModels []QuestionModel
	err := r.db.WithContext(ctx).
		Where("classroom_id = ?", classroomId).
		Order("created_at DESC, id DESC").
		Find(&questionModels).Error
	if err != nil {
		return nil, err
	}

	questions := make([]entities.Question, 0, len(questionModels))
	for i := range questionModels {
		questions = append(questions, *mapQuestionToEntity(&questionModels[i]))
	}
	return questions, nil
}

func mapQuestionToEntity(questionModel *QuestionModel) *entities.Question {
	return &entities.Question{
		Id:          questionModel.Id,
		Timestamp:   questionModel.CreatedAt,
		Text:        questionModel.Text,
		StudentId:   questionModel.StudentId,
		ClassroomId: questionModel.ClassroomId,
	}
}
