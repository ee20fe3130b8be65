package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"classroom-service/internal/domain/entities"
	"classroom-service/internal/domain/repositories"
)

type CredentialRepository struct {
	db *gorm.DB
}

func NewCredentialRepository(db *gorm.DB) repositories.CredentialRepository {
	return &CredentialRepository{db: db}
}

func (r *CredentialRepository) Create(ctx context.Context, credential *entities.Credential) (*entities.Credential, error) {
	credentialModel := CredentialModel{
		Value:     credential.Value,
		UserId:    credential.UserId,
		CreatedAt: credential.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&credentialModel).Error; err != nil {
		return nil, err
	}

	return mapCredentialToEntity(&credentialModel), nil
}

func (r *CredentialRepository) FindByValue(ctx context.Context, value string) (*entities.Credential, error) {
	var credentialModel CredentialModel
	if err := r.db.WithContext(ctx).Where("value = ?", value).First(&credentialModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapCredentialToEntity(&credentialModel), nil
}

func (r *CredentialRepository) FindByUserId(ctx context.Context, userId uuid.UUID) (*entities.Credential, error) {
	var credentialModel CredentialModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&credentialModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapCredentialToEntity(&credentialModel), nil
}

func mapCredentialToEntity(credentialModel *CredentialModel) *entities.Credential {
	return &entities.Credential{
		Value:     credentialModel.Value,
		UserId:    credentialModel.UserId,
		CreatedAt: credentialModel.CreatedAt,
	}
}
