package interfaces

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/application/command"
	"classroom-service/internal/application/query"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error)
}
