package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/domain/repositories"
	"kalasangha.client/internal/infrastructure/uploads"
	"kalasangha.client/internal/interfaces/http/response"
)

type TeamHandler struct {
	teams   repositories.TeamRepository
	members repositories.MemberRepository
	files   *uploads.Store
}

func NewTeamHandler(teams repositories.TeamRepository, members repositories.MemberRepository, files *uploads.Store) *TeamHandler {
	return &TeamHandler{teams: teams, members: members, files: files}
}

// ListTeams returns all teams ordered for the directory page.
// GET /api/teams
func (h *TeamHandler) ListTeams(c *gin.Context) {
	items, err := h.teams.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teams": items})
}

// GetRoster returns one team's members split into heads and members.
// GET /api/teams/:id/members
func (h *TeamHandler) GetRoster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	team, err := h.teams.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	members, err := h.members.ListByTeam(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	roster := entities.TeamRoster{
		TeamName:  team.Name,
		TeamPhoto: team.Photo,
		Heads:     []entities.Member{},
		Members:   []entities.Member{},
	}
	for _, m := range members {
		if m.Role == entities.RoleHead {
			roster.Heads = append(roster.Heads, *m)
		} else {
			roster.Members = append(roster.Members, *m)
		}
	}

	response.Success(c, http.StatusOK, roster)
}

// CreateTeam creates a team, multipart when a team photo travels with it.
// POST /api/teams
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	input, photoURL, err := h.bindTeam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	team := &entities.Team{
		Name:  strings.TrimSpace(input.Name),
		NameK: strings.TrimSpace(input.NameK),
		Photo: null.NewString(photoURL, photoURL != ""),
		Order: input.Order,
	}
	if team.Name == "" {
		response.Error(c, domainerrors.BadRequest("team_name is required"))
		return
	}

	if err := h.teams.Create(c.Request.Context(), team); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, team)
}

// UpdateTeam replaces a team's fields.
// PUT /api/teams/:id
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	existing, err := h.teams.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	input, photoURL, err := h.bindTeam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.NameK = strings.TrimSpace(input.NameK)
	if photoURL != "" {
		if existing.Photo.Valid {
			_ = h.files.Remove(existing.Photo.String)
		}
		existing.Photo = null.StringFrom(photoURL)
	}

	if err := h.teams.Update(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, existing)
}

// ReorderTeam moves a team to a new position.
// POST /api/teams/:id/order
func (h *TeamHandler) ReorderTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	var input struct {
		Order *int `json:"order" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("order is required"))
		return
	}

	if err := h.teams.UpdateOrder(c.Request.Context(), id, *input.Order); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Team order updated"})
}

// DeleteTeam removes a team; the delete cascades to its members.
// DELETE /api/teams/:id
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	existing, err := h.teams.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.teams.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	if existing.Photo.Valid {
		_ = h.files.Remove(existing.Photo.String)
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Team deleted"})
}

// AddMember adds a person to a team.
// POST /api/teams/:id/members
func (h *TeamHandler) AddMember(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid team ID"))
		return
	}

	if _, err := h.teams.GetByID(c.Request.Context(), teamID); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("team not found"))
			return
		}
		response.Error(c, err)
		return
	}

	input, imageURL, err := h.bindMember(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	member := &entities.Member{
		TeamID:   teamID,
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
		Role:     input.Role,
		ImageURL: null.NewString(imageURL, imageURL != ""),
	}
	if member.Name == "" || member.Email == "" || member.Phone == "" {
		response.Error(c, domainerrors.BadRequest("name, email, and phone are required"))
		return
	}
	if member.Role != entities.RoleHead && member.Role != entities.RoleMember {
		response.Error(c, domainerrors.BadRequest("role must be head or member"))
		return
	}

	if err := h.members.Create(c.Request.Context(), member); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, member)
}

// UpdateMember replaces a member's fields.
// PUT /api/teams/members/:id
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid member ID"))
		return
	}

	existing, err := h.members.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	input, imageURL, err := h.bindMember(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	existing.Name = strings.TrimSpace(input.Name)
	existing.Email = strings.TrimSpace(input.Email)
	existing.Phone = strings.TrimSpace(input.Phone)
	existing.Role = input.Role
	if imageURL != "" {
		if existing.ImageURL.Valid {
			_ = h.files.Remove(existing.ImageURL.String)
		}
		existing.ImageURL = null.StringFrom(imageURL)
	}

	if err := h.members.Update(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, existing)
}

// DeleteMember removes a member from their team.
// DELETE /api/teams/members/:id
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid member ID"))
		return
	}

	existing, err := h.members.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("member not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.members.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	if existing.ImageURL.Valid {
		_ = h.files.Remove(existing.ImageURL.String)
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Member deleted"})
}

func (h *TeamHandler) bindTeam(c *gin.Context) (entities.TeamInput, string, error) {
	var input entities.TeamInput

	if isMultipart(c) {
		input = entities.TeamInput{
			Name:  c.PostForm("team_name"),
			NameK: c.PostForm("team_name_k"),
		}
		if fh := formFile(c, "team_photo"); fh != nil {
			url, err := h.files.Save(fh)
			if err != nil {
				return input, "", domainerrors.InternalError(err)
			}
			return input, url, nil
		}
		return input, "", nil
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		return input, "", domainerrors.BadRequest(err.Error())
	}
	return input, "", nil
}

func (h *TeamHandler) bindMember(c *gin.Context) (entities.MemberInput, string, error) {
	var input entities.MemberInput

	if isMultipart(c) {
		input = entities.MemberInput{
			Name:  c.PostForm("name"),
			Email: c.PostForm("email"),
			Phone: c.PostForm("phone"),
			Role:  entities.MemberRole(c.PostForm("role")),
		}
		if fh := formFile(c, "image"); fh != nil {
			url, err := h.files.Save(fh)
			if err != nil {
				return input, "", domainerrors.InternalError(err)
			}
			return input, url, nil
		}
		return input, "", nil
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		return input, "", domainerrors.BadRequest(err.Error())
	}
	return input, "", nil
}
