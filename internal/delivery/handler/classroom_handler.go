package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"classroom-service/internal/application/command"
)

// CreateClassroom handles POST /api/classrooms. Teachers only.
func (h *Handler) CreateClassroom(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var createCommand command.CreateClassroomCommand
	if err := c.Bind(&createCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&createCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.classroomService.CreateClassroom(c.Request().Context(), user, &createCommand)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// GetClassroom handles GET /api/classrooms/:id. Public read with roster.
func (h *Handler) GetClassroom(c echo.Context) error {
	classroomId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid classroom id"})
	}

	result, err := h.classroomService.GetClassroom(c.Request().Context(), classroomId)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// EnrollStudents handles POST /api/classrooms/:id/students. Only the owning
// teacher; ids that are unknown or not students are dropped, not errors.
func (h *Handler) EnrollStudents(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	classroomId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid classroom id"})
	}

	var enrollCommand command.EnrollStudentsCommand
	if err := c.Bind(&enrollCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&enrollCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.classroomService.EnrollStudents(c.Request().Context(), user, classroomId, &enrollCommand)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
