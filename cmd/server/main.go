package main

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"classroom-service/internal/application/services"
	"classroom-service/internal/config"
	"classroom-service/internal/delivery/handler"
	"classroom-service/internal/infrastructure"
	"classroom-service/internal/infrastructure/db/postgres"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func main() {
	godotenv.Load()
	cfg := config.Load()

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	redisService := infrastructure.NewRedisService()
	defer redisService.Close()

	userRepo := postgres.NewUserRepository(db)
	classroomRepo := postgres.NewClassroomRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)

	tokenService := infrastructure.NewTokenService(credentialRepo, redisService)

	authService := services.NewAuthService(userRepo, tokenService)
	classroomService := services.NewClassroomService(classroomRepo, userRepo)
	questionService := services.NewQuestionService(questionRepo, classroomRepo)

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Validator = &CustomValidator{validator: validator.New()}

	h := handler.NewHandler(authService, classroomService, questionService)
	authMiddleware := handler.BearerAuth(tokenService, userRepo)
	handler.RegisterRoutes(e, h, authMiddleware)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
