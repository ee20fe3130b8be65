package query

import "classroom-service/internal/application/common"

type ClassroomQueryResult struct {
	Result *common.ClassroomResult `json:"result"`
}
