package common

import (
	"time"

	"github.com/google/uuid"
)

type QuestionResult struct {
	Id          uint      `json:"id"`
	Text        string    `json:"text"`
	StudentId   uuid.UUID `json:"student_id"`
	ClassroomId uuid.UUID `json:"classroom_id"`
	Timestamp   time.Time `json:"timestamp"`
}
