package services

import (
	"context"

	"github.com/google/uuid"

	"classroom-service/internal/application/command"
	"classroom-service/internal/application/interfaces"
	"classroom-service/internal/application/mapper"
	"classroom-service/internal/application/query"
	"classroom-service/internal/domain"
	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
	"classroom-service/internal/infrastructure"
)

type AuthService struct {
	userRepo     repositories.UserRepository
	tokenService *infrastructure.TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokenService *infrastructure.TokenService) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	existingUser, err := s.userRepo.FindByUsername(ctx, registerCommand.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrUsernameTaken
	}

	newUser := entities.NewUser(
		registerCommand.Username,
		registerCommand.Password,
		entities.Role(registerCommand.Role),
		registerCommand.FirstName,
		registerCommand.LastName,
	)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, err
	}

	// A fresh user gets a fresh credential, returned right away so the
	// caller does not need a separate login.
	token, err := s.tokenService.Issue(ctx, createdUser.Id)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, loginCommand.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.ErrWrongPassword
	}

	// Get-or-create: the first successful login without a prior credential
	// mints one, every later login returns the same value.
	token, err := s.tokenService.Issue(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
