package mapper

import (
	"classroom-service/internal/application/common"
	"classroom-service/internal/domain/entities"
)

func NewClassroomResultFromEntity(classroom *entities.Classroom) *common.ClassroomResult {
	return &common.ClassroomResult{
		Id:               classroom.Id,
		CreatedAt:        classroom.CreatedAt,
		Title:            classroom.Title,
		TeacherId:        classroom.TeacherId,
		EnrolledStudents: NewUserResultsFromEntities(classroom.EnrolledStudents),
	}
}
