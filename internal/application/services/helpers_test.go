package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"classroom-service/internal/application/command"
	"classroom-service/internal/application/interfaces"
	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
	"classroom-service/internal/infrastructure"
	"classroom-service/internal/infrastructure/db/postgres"
)

type testStack struct {
	auth       interfaces.AuthService
	classrooms interfaces.ClassroomService
	questions  interfaces.QuestionService
	userRepo   repositories.UserRepository
}

// newTestDB opens a per-test in-memory sqlite database with foreign keys
// enabled, migrated to the same schema the server uses.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	return db
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	db := newTestDB(t)

	userRepo := postgres.NewUserRepository(db)
	classroomRepo := postgres.NewClassroomRepository(db)
	questionRepo := postgres.NewQuestionRepository(db)
	credentialRepo := postgres.NewCredentialRepository(db)

	tokenService := infrastructure.NewTokenService(credentialRepo, infrastructure.NewDisabledRedisService())

	return &testStack{
		auth:       NewAuthService(userRepo, tokenService),
		classrooms: NewClassroomService(classroomRepo, userRepo),
		questions:  NewQuestionService(questionRepo, classroomRepo),
		userRepo:   userRepo,
	}
}

func registerUser(t *testing.T, stack *testStack, username string, role entities.Role) *entities.User {
	t.Helper()

	result, err := stack.auth.Register(context.Background(), &command.RegisterUserCommand{
		Username: username,
		Password: "secret",
		Role:     string(role),
	})
	require.NoError(t, err)

	user, err := stack.userRepo.FindById(context.Background(), result.User.Id)
	require.NoError(t, err)
	require.NotNil(t, user)

	return user
}
