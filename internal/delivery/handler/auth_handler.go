package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"classroom-service/internal/application/command"
)

// Signup handles POST /api/signup. A successful registration mints the
// user's credential, so the response carries the token straight away.
func (h *Handler) Signup(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&registerCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// Login handles POST /api/login. Unknown username is 404, wrong password
// is 401, and the same credential value is returned on every success.
func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&loginCommand); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Me handles GET /api/users/me.
func (h *Handler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := h.authService.CurrentUser(c.Request().Context(), user.Id)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
