package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/infrastructure/models"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, announcement *entities.Announcement) error {
	m := r.toModel(announcement)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	announcement.ID = m.ID
	return nil
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Announcement, error) {
	var m models.Announcement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AnnouncementRepository) List(ctx context.Context) ([]*entities.Announcement, error) {
	var ms []models.Announcement
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Announcement, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *AnnouncementRepository) Update(ctx context.Context, announcement *entities.Announcement) error {
	updates := map[string]interface{}{
		"title":      announcement.Title,
		"title_k":    announcement.TitleK,
		"message":    announcement.Message,
		"message_k":  announcement.MessageK,
		"link":       announcement.Link.String,
		"date":       announcement.Date.String,
		"media_url":  announcement.MediaURL.String,
		"media_type": announcement.MediaType.String,
		"updated_at": time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Announcement{}).
		Where("id = ?", announcement.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *AnnouncementRepository) toEntity(m *models.Announcement) *entities.Announcement {
	return &entities.Announcement{
		ID:        m.ID,
		Title:     m.Title,
		TitleK:    m.TitleK,
		Message:   m.Message,
		MessageK:  m.MessageK,
		Link:      null.NewString(m.Link, m.Link != ""),
		Date:      null.NewString(m.Date, m.Date != ""),
		MediaURL:  null.NewString(m.MediaURL, m.MediaURL != ""),
		MediaType: null.NewString(m.MediaType, m.MediaType != ""),
	}
}

func (r *AnnouncementRepository) toModel(e *entities.Announcement) *models.Announcement {
	return &models.Announcement{
		ID:        e.ID,
		Title:     e.Title,
		TitleK:    e.TitleK,
		Message:   e.Message,
		MessageK:  e.MessageK,
		Link:      e.Link.String,
		Date:      e.Date.String,
		MediaURL:  e.MediaURL.String,
		MediaType: e.MediaType.String,
	}
}
