package command

import "classroom-service/internal/application/common"

type CreateClassroomCommand struct {
	Title string `json:"title" validate:"required"`
}

type CreateClassroomCommandResult struct {
	Result *common.ClassroomResult `json:"result"`
}
