package repositories

import (
	"context"

	"github.com/google/uuid"
	"kalasangha.client/internal/domain/entities"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)
	List(ctx context.Context) ([]*entities.Team, error)
	Update(ctx context.Context, team *entities.Team) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	// Delete removes the team and cascades to its members.
	Delete(ctx context.Context, id uuid.UUID) error
}

type MemberRepository interface {
	Create(ctx context.Context, member *entities.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]*entities.Member, error)
	Update(ctx context.Context, member *entities.Member) error
	Delete(ctx context.Context, id uuid.UUID) error
}
