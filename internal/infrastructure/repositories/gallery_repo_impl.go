package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/infrastructure/models"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) Create(ctx context.Context, item *entities.GalleryItem) error {
	m := r.toModel(item)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	item.ID = m.ID
	return nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.GalleryItem, error) {
	var m models.GalleryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *GalleryRepository) List(ctx context.Context) ([]*entities.GalleryItem, error) {
	var ms []models.GalleryItem
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.GalleryItem, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *GalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GalleryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *GalleryRepository) toEntity(m *models.GalleryItem) *entities.GalleryItem {
	return &entities.GalleryItem{
		ID:        m.ID,
		Title:     m.Desc,
		MediaURL:  m.MediaURL,
		MediaType: entities.MediaType(m.MediaType),
	}
}

func (r *GalleryRepository) toModel(e *entities.GalleryItem) *models.GalleryItem {
	return &models.GalleryItem{
		ID:        e.ID,
		Desc:      e.Title,
		MediaURL:  e.MediaURL,
		MediaType: string(e.MediaType),
	}
}
