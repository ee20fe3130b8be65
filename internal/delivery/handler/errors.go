package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"classroom-service/internal/domain"
)

// errorStatus maps the domain error taxonomy onto HTTP statuses. Anything
// unrecognized is a plain 500 and its message is not leaked to the caller.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrClassroomNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrWrongPassword),
		errors.Is(err, domain.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotTeacher),
		errors.Is(err, domain.ErrNotStudent),
		errors.Is(err, domain.ErrNotClassroomOwner),
		errors.Is(err, domain.ErrNotEnrolled):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(c echo.Context, err error) error {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	return c.JSON(status, map[string]string{"error": message})
}
