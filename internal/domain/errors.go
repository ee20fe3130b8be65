package domain

import "errors"

var (
	ErrUsernameTaken     = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrInvalidCredential = errors.New("invalid or missing credential")

	ErrClassroomNotFound = errors.New("classroom not found")
	ErrNotTeacher        = errors.New("only teachers may perform this action")
	ErrNotStudent        = errors.New("only students may perform this action")
	ErrNotClassroomOwner = errors.New("only the classroom teacher can add students")
	ErrNotEnrolled       = errors.New("student is not enrolled in this classroom")
)
