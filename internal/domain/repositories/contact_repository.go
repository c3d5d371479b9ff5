package repositories

import (
	"context"

	"kalasangha.client/internal/domain/entities"
)

type ContactRepository interface {
	Create(ctx context.Context, message *entities.ContactInput) error
}
