package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"classroom-service/internal/domain"
	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
	"classroom-service/internal/infrastructure"
)

const userContextKey = "user"

// BearerAuth resolves the Authorization header to a user and stores it in
// the request context. Protected routes run behind it; public reads do not.
func BearerAuth(tokenService *infrastructure.TokenService, userRepo repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return errorJSON(c, domain.ErrInvalidCredential)
			}

			value := strings.TrimPrefix(authHeader, "Bearer ")

			userId, err := tokenService.Resolve(c.Request().Context(), value)
			if err != nil {
				return errorJSON(c, domain.ErrInvalidCredential)
			}

			user, err := userRepo.FindById(c.Request().Context(), userId)
			if err != nil {
				return errorJSON(c, err)
			}
			if user == nil {
				return errorJSON(c, domain.ErrInvalidCredential)
			}

			c.Set(userContextKey, user)

			return next(c)
		}
	}
}

func currentUser(c echo.Context) (*entities.User, error) {
	user, ok := c.Get(userContextKey).(*entities.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidCredential.Error())
	}
	return user, nil
}
