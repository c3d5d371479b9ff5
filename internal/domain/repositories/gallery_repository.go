package repositories

import (
	"context"

	"github.com/google/uuid"
	"kalasangha.client/internal/domain/entities"
)

type GalleryRepository interface {
	Create(ctx context.Context, item *entities.GalleryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.GalleryItem, error)
	List(ctx context.Context) ([]*entities.GalleryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
