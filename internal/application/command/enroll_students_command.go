package command

import (
	"github.com/google/uuid"

	"classroom-service/internal/application/common"
)

type EnrollStudentsCommand struct {
	StudentIds []uuid.UUID `json:"student_ids" validate:"required"`
}

type EnrollStudentsCommandResult struct {
	Message       string                  `json:"message"`
	EnrolledCount int                     `json:"enrolled_count"`
	Classroom     *common.ClassroomResult `json:"classroom"`
}
