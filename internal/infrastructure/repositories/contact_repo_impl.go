package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kalasangha.client/internal/domain/entities"
	"kalasangha.client/internal/infrastructure/models"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, message *entities.ContactInput) error {
	m := &models.ContactMessage{
		ID:      uuid.New(),
		Name:    message.Name,
		Email:   message.Email,
		Message: message.Message,
	}
	return r.db.WithContext(ctx).Create(m).Error
}
