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

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	m := r.toModel(event)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	event.ID = m.ID
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	var m models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *EventRepository) List(ctx context.Context, includeUnpublished bool) ([]*entities.Event, error) {
	var ms []models.Event
	query := r.db.WithContext(ctx).Model(&models.Event{})
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}
	if err := query.Order("date ASC, created_at ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	updates := map[string]interface{}{
		"title":         event.Title,
		"title_k":       event.TitleK,
		"description":   event.Description,
		"description_k": event.DescriptionK,
		"date":          event.Date,
		"event_time":    event.EventTime.String,
		"location":      event.Location.String,
		"link":          event.Link.String,
		"image_url":     event.ImageURL.String,
		"published":     event.Published,
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) toEntity(m *models.Event) *entities.Event {
	return &entities.Event{
		ID:           m.ID,
		Title:        m.Title,
		TitleK:       m.TitleK,
		Description:  m.Description,
		DescriptionK: m.DescriptionK,
		Date:         m.Date,
		EventTime:    null.NewString(m.EventTime, m.EventTime != ""),
		Location:     null.NewString(m.Location, m.Location != ""),
		Link:         null.NewString(m.Link, m.Link != ""),
		ImageURL:     null.NewString(m.ImageURL, m.ImageURL != ""),
		Published:    m.Published,
	}
}

func (r *EventRepository) toModel(e *entities.Event) *models.Event {
	return &models.Event{
		ID:           e.ID,
		Title:        e.Title,
		TitleK:       e.TitleK,
		Description:  e.Description,
		DescriptionK: e.DescriptionK,
		Date:         e.Date,
		EventTime:    e.EventTime.String,
		Location:     e.Location.String,
		Link:         e.Link.String,
		ImageURL:     e.ImageURL.String,
		Published:    e.Published,
	}
}
