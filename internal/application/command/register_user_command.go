package command

import "classroom-service/internal/application/common"

type RegisterUserCommand struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=student teacher"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegisterUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
