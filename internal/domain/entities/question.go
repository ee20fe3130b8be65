package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Question is append-only: once posted it is never updated or deleted,
// except through the cascade when its classroom is removed. The numeric id
// and timestamp are assigned by the persistence layer on insert.
type Question struct {
	Id          uint
	Timestamp   time.Time
	Text        string
	StudentId   uuid.UUID
	ClassroomId uuid.UUID
}

func NewQuestion(text string, studentId, classroomId uuid.UUID) *Question {
	return &Question{
		Text:        text,
		StudentId:   studentId,
		ClassroomId: classroomId,
	}
}

func (q *Question) validate() error {
	if q.Text == "" {
		return errors.New("text must not be empty")
	}
	if q.StudentId == uuid.Nil {
		return errors.New("question must have an author")
	}
	if q.ClassroomId == uuid.Nil {
		return errors.New("question must belong to a classroom")
	}
	return nil
}

type ValidatedQuestion struct {
	*Question
}

func NewValidatedQuestion(question *Question) (*ValidatedQuestion, error) {
	if err := question.validate(); err != nil {
		return nil, err
	}

	return &ValidatedQuestion{Question: question}, nil
}

func (vq *ValidatedQuestion) GetQuestion() *Question {
	return vq.Question
}
