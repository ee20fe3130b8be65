package common

import (
	"time"

	"github.com/google/uuid"
)

type ClassroomResult struct {
	Id               uuid.UUID    `json:"id"`
	CreatedAt        time.Time    `json:"created_at"`
	Title            string       `json:"title"`
	TeacherId        uuid.UUID    `json:"teacher_id"`
	EnrolledStudents []UserResult `json:"enrolled_students"`
}
