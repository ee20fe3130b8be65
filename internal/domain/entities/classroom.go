package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Classroom is owned by exactly one teacher, fixed at creation. The
// enrollment set only ever grows; there is no removal operation.
type Classroom struct {
	Id               uuid.UUID
	CreatedAt        time.Time
	Title            string
	TeacherId        uuid.UUID
	EnrolledStudents []User
}

func NewClassroom(title string, teacherId uuid.UUID) *Classroom {
	return &Classroom{
		Id:               uuid.New(),
		CreatedAt:        time.Now(),
		Title:            title,
		TeacherId:        teacherId,
		EnrolledStudents: make([]User, 0),
	}
}

func (c *Classroom) validate() error {
	if c.Title == "" {
		return errors.New("title must not be empty")
	}
	if c.TeacherId == uuid.Nil {
		return errors.New("classroom must have a teacher")
	}
	return nil
}

type ValidatedClassroom struct {
	*Classroom
}

func NewValidatedClassroom(classroom *Classroom) (*ValidatedClassroom, error) {
	if err := classroom.validate(); err != nil {
		return nil, err
	}

	return &ValidatedClassroom{Classroom: classroom}, nil
}

func (vc *ValidatedClassroom) GetClassroom() *Classroom {
	return vc.Classroom
}
