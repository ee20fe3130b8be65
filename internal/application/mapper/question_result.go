package mapper

import (
	"classroom-service/internal/application/common"
	"classroom-service/internal/domain/entities"
)

func NewQuestionResultFromEntity(question *entities.Question) *common.QuestionResult {
	return &common.QuestionResult{
		Id:          question.Id,
		Text:        question.Text,
		StudentId:   question.StudentId,
		ClassroomId: question.ClassroomId,
		Timestamp:   question.Timestamp,
	}
}

func NewQuestionResultsFromEntities(questions []entities.Question) []common.QuestionResult {
	results := make([]common.QuestionResult, 0, len(questions))
	for i := range questions {
		results = append(results, *NewQuestionResultFromEntity(&questions[i]))
	}
	return results
}
