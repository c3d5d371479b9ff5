package client

import (
	"context"
	"net/http"

	"kalasangha.client/internal/domain/entities"
)

// TeamsRepository performs team and member CRUD. All mutations carry the
// admin bearer token.
type TeamsRepository struct {
	c *Client
}

// List fetches all teams ordered by their display order; ties resolve by
// creation order on the backend.
func (r *TeamsRepository) List(ctx context.Context) ([]entities.Team, error) {
	var body struct {
		Teams []entities.Team `json:"teams"`
	}
	if err := r.c.getJSON(ctx, "/api/teams", nil, &body); err != nil {
		return nil, err
	}
	if body.Teams == nil {
		body.Teams = []entities.Team{}
	}
	return body.Teams, nil
}

// Roster fetches one team's members, split into heads and members.
func (r *TeamsRepository) Roster(ctx context.Context, teamID string) (*entities.TeamRoster, error) {
	var roster entities.TeamRoster
	if err := r.c.getJSON(ctx, "/api/teams/"+teamID+"/members", nil, &roster); err != nil {
		return nil, err
	}
	if roster.Heads == nil {
		roster.Heads = []entities.Member{}
	}
	if roster.Members == nil {
		roster.Members = []entities.Member{}
	}
	return &roster, nil
}

// Create submits a new team, multipart when a team photo travels with it.
func (r *TeamsRepository) Create(ctx context.Context, in entities.TeamInput, photo *Attachment) (*entities.Team, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var created entities.Team
	if photo != nil {
		if err := r.c.sendMultipart(ctx, http.MethodPost, "/api/teams", teamFields(in), []Attachment{*photo}, true, &created); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPost, "/api/teams", in, true, &created); err != nil {
			return nil, err
		}
	}
	return &created, nil
}

// Update replaces a team's fields.
func (r *TeamsRepository) Update(ctx context.Context, id string, in entities.TeamInput, photo *Attachment) (*entities.Team, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var updated entities.Team
	if photo != nil {
		if err := r.c.sendMultipart(ctx, http.MethodPut, "/api/teams/"+id, teamFields(in), []Attachment{*photo}, true, &updated); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPut, "/api/teams/"+id, in, true, &updated); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

// Reorder moves a team to a new position in the directory.
func (r *TeamsRepository) Reorder(ctx context.Context, id string, order int) error {
	payload := map[string]int{"order": order}
	return r.c.sendJSON(ctx, http.MethodPost, "/api/teams/"+id+"/order", payload, true, nil)
}

// Remove deletes a team. The backend cascades the delete to the team's
// members; the client only triggers it.
func (r *TeamsRepository) Remove(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/api/teams/"+id, true)
}

// AddMember adds a person to a team, multipart when a portrait travels with
// the form.
func (r *TeamsRepository) AddMember(ctx context.Context, teamID string, in entities.MemberInput, image *Attachment) (*entities.Member, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var created entities.Member
	if image != nil {
		if err := r.c.sendMultipart(ctx, http.MethodPost, "/api/teams/"+teamID+"/members", memberFields(in), []Attachment{*image}, true, &created); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPost, "/api/teams/"+teamID+"/members", in, true, &created); err != nil {
			return nil, err
		}
	}
	return &created, nil
}

// UpdateMember replaces a member's fields.
func (r *TeamsRepository) UpdateMember(ctx context.Context, memberID string, in entities.MemberInput, image *Attachment) (*entities.Member, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var updated entities.Member
	if image != nil {
		if err := r.c.sendMultipart(ctx, http.MethodPut, "/api/teams/members/"+memberID, memberFields(in), []Attachment{*image}, true, &updated); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPut, "/api/teams/members/"+memberID, in, true, &updated); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

// RemoveMember deletes a member from their team.
func (r *TeamsRepository) RemoveMember(ctx context.Context, memberID string) error {
	return r.c.delete(ctx, "/api/teams/members/"+memberID, true)
}

func teamFields(in entities.TeamInput) map[string]string {
	return map[string]string{
		"team_name":   in.Name,
		"team_name_k": in.NameK,
	}
}

func memberFields(in entities.MemberInput) map[string]string {
	return map[string]string{
		"name":  in.Name,
		"email": in.Email,
		"phone": in.Phone,
		"role":  string(in.Role),
	}
}
