package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"kalasangha.client/internal/i18n"
)

// MemberRole distinguishes team heads from regular members.
type MemberRole string

const (
	RoleHead   MemberRole = "head"
	RoleMember MemberRole = "member"
)

// Team represents a club wing or committee on the team directory page.
// Order is sortable but not unique; ties resolve by creation order.
type Team struct {
	ID    uuid.UUID   `json:"id"`
	Name  string      `json:"team_name"`
	NameK string      `json:"team_name_k,omitempty"`
	Photo null.String `json:"team_photo,omitempty"`
	Order int         `json:"order"`
}

// LocalName returns the team name in the given display language.
func (t *Team) LocalName(lang i18n.Language) string {
	return i18n.Pick(lang, t.Name, t.NameK)
}

// Member represents a person belonging to a team. Team deletion cascades to
// its members on the backend; the client only triggers it.
type Member struct {
	ID       uuid.UUID   `json:"id"`
	TeamID   uuid.UUID   `json:"teamId"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Role     MemberRole  `json:"role"`
	ImageURL null.String `json:"image_url,omitempty"`
}

// TeamRoster is the member listing for one team, split by role.
type TeamRoster struct {
	TeamName  string      `json:"team_name"`
	TeamPhoto null.String `json:"team_photo,omitempty"`
	Heads     []Member    `json:"heads"`
	Members   []Member    `json:"members"`
}

// TeamInput is the admin form payload for team writes.
type TeamInput struct {
	Name  string `json:"team_name" validate:"required"`
	NameK string `json:"team_name_k"`
	Order int    `json:"order" validate:"gte=0"`
}

// MemberInput is the admin form payload for member writes.
type MemberInput struct {
	Name  string     `json:"name" validate:"required"`
	Email string     `json:"email" validate:"required,email"`
	Phone string     `json:"phone" validate:"required"`
	Role  MemberRole `json:"role" validate:"required,oneof=head member"`
}
