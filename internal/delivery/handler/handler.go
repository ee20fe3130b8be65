package handler

import "classroom-service/internal/application/interfaces"

type Handler struct {
	authService      interfaces.AuthService
	classroomService interfaces.ClassroomService
	questionService  interfaces.QuestionService
}

func NewHandler(
	authService interfaces.AuthService,
	classroomService interfaces.ClassroomService,
	questionService interfaces.QuestionService,
) *Handler {
	return &Handler{
		authService:      authService,
		classroomService: classroomService,
		questionService:  questionService,
	}
}
