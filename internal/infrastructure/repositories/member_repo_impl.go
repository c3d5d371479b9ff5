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

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	m := r.toModel(member)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	member.ID = m.ID
	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MemberRepository) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Member, error) {
	var ms []models.Member
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Member, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *MemberRepository) Update(ctx context.Context, member *entities.Member) error {
	updates := map[string]interface{}{
		"name":       member.Name,
		"email":      member.Email,
		"phone":      member.Phone,
		"role":       string(member.Role),
		"image_url":  member.ImageURL.String,
		"updated_at": time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", member.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MemberRepository) toEntity(m *models.Member) *entities.Member {
	return &entities.Member{
		ID:       m.ID,
		TeamID:   m.TeamID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		Role:     entities.MemberRole(m.Role),
		ImageURL: null.NewString(m.ImageURL, m.ImageURL != ""),
	}
}

func (r *MemberRepository) toModel(e *entities.Member) *models.Member {
	return &models.Member{
		ID:       e.ID,
		TeamID:   e.TeamID,
		Name:     e.Name,
		Email:    e.Email,
		Phone:    e.Phone,
		Role:     string(e.Role),
		ImageURL: e.ImageURL.String,
	}
}
