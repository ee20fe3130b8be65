package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"classroom-service/internal/application/command"
)

// PostQuestion handles POST /api/classrooms/:id/questions. Enrolled
// students only.
func (h *Handler) PostQuestion(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	classroomId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid classroom id"})
	}

	var postCommand command.PostQuestionCommand
	if err := c.Bind(&postCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&postCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.questionService.PostQuestion(c.Request().Context(), user, classroomId, &postCommand)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// ListQuestions handles GET /api/classrooms/:id/questions. Public: no
// credential needed, and an unknown classroom returns an empty list.
func (h *Handler) ListQuestions(c echo.Context) error {
	classroomId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid classroom id"})
	}

	result, err := h.questionService.ListQuestions(c.Request().Context(), classroomId)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
