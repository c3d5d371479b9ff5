package repositories

import (
	"context"

	"github.com/google/uuid"
	"kalasangha.client/internal/domain/entities"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entities.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Announcement, error)
	List(ctx context.Context) ([]*entities.Announcement, error)
	Update(ctx context.Context, announcement *entities.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}
