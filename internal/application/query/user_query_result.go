package query

import "classroom-service/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult `json:"result"`
}
