package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kalasangha.client/internal/domain/entities"
	"kalasangha.client/internal/i18n"
)

// AnnouncementsRepository performs announcement CRUD. The deployed backend
// accepts announcement writes without a bearer token; that behavior is
// preserved here rather than silently tightened.
type AnnouncementsRepository struct {
	c *Client
}

var cacheBuster = func() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// List fetches the announcement board. The response is wrapped in a success
// envelope; a well-formed body with success=false yields an empty list.
func (r *AnnouncementsRepository) List(ctx context.Context, lang i18n.Language) ([]entities.Announcement, error) {
	query := url.Values{}
	if lang != "" {
		query.Set("lang", string(lang))
	}
	query.Set("_v", cacheBuster())

	var body struct {
		Success       bool                    `json:"success"`
		Announcements []entities.Announcement `json:"announcements"`
	}
	if err := r.c.getJSON(ctx, "/api/announcements", query, &body); err != nil {
		return nil, err
	}
	if !body.Success || body.Announcements == nil {
		return []entities.Announcement{}, nil
	}
	return body.Announcements, nil
}

// Create submits a new announcement, multipart when media travels with it.
func (r *AnnouncementsRepository) Create(ctx context.Context, in entities.AnnouncementInput, media *Attachment, mediaType entities.MediaType) (*entities.Announcement, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var created entities.Announcement
	if media != nil {
		fields := announcementFields(in)
		fields["mediaType"] = string(mediaType)
		if err := r.c.sendMultipart(ctx, http.MethodPost, "/api/announcements", fields, []Attachment{*media}, false, &created); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPost, "/api/announcements", in, false, &created); err != nil {
			return nil, err
		}
	}
	return &created, nil
}

// Update replaces an announcement's fields.
func (r *AnnouncementsRepository) Update(ctx context.Context, id string, in entities.AnnouncementInput, media *Attachment, mediaType entities.MediaType) (*entities.Announcement, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var updated entities.Announcement
	if media != nil {
		fields := announcementFields(in)
		fields["mediaType"] = string(mediaType)
		if err := r.c.sendMultipart(ctx, http.MethodPut, "/api/announcements/"+id, fields, []Attachment{*media}, false, &updated); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPut, "/api/announcements/"+id, in, false, &updated); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

// Remove deletes an announcement.
func (r *AnnouncementsRepository) Remove(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/api/announcements/"+id, false)
}

func announcementFields(in entities.AnnouncementInput) map[string]string {
	return map[string]string{
		"title":     in.Title,
		"title_k":   in.TitleK,
		"message":   in.Message,
		"message_k": in.MessageK,
		"link":      in.Link,
		"date":      in.Date,
	}
}
