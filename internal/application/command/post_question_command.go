package command

import "classroom-service/internal/application/common"

type PostQuestionCommand struct {
	Text string `json:"text" validate:"required"`
}

type PostQuestionCommandResult struct {
	Result *common.QuestionResult `json:"result"`
}
