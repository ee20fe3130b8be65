package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	FirstName string
	LastName  string
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type ClassroomModel struct {
	Id               uuid.UUID   `gorm:"type:uuid;primary_key"`
	CreatedAt        time.Time
	Title            string      `gorm:"not null"`
	TeacherId        uuid.UUID   `gorm:"type:uuid;not null;index"`
	Teacher          UserModel   `gorm:"foreignKey:TeacherId"`
	EnrolledStudents []UserModel `gorm:"many2many:classroom_students"`
}

func (ClassroomModel) TableName() string {
	return "classrooms"
}

// QuestionModel rides a serial primary key so insertion order survives
// timestamp collisions. Deleting a classroom cascades to its questions.
type QuestionModel struct {
	Id          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	Text        string         `gorm:"not null"`
	StudentId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	ClassroomId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Classroom   ClassroomModel `gorm:"foreignKey:ClassroomId;constraint:OnDelete:CASCADE"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

type CredentialModel struct {
	Value     string    `gorm:"primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (CredentialModel) TableName() string {
	return "credentials"
}
