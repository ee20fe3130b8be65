package query

import "classroom-service/internal/application/common"

type QuestionListQueryResult struct {
	Results []common.QuestionResult `json:"results"`
}
