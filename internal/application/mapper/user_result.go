package mapper

import (
	"classroom-service/internal/application/common"
	"classroom-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
	}
}

func NewUserResultsFromEntities(users []entities.User) []common.UserResult {
	results := make([]common.UserResult, 0, len(users))
	for i := range users {
		results = append(results, *NewUserResultFromEntity(&users[i]))
	}
	return results
}
