package client

import (
	"context"
	"net/http"
	"net/url"

	"kalasangha.client/internal/domain/entities"
	"kalasangha.client/internal/i18n"
)

// EventsRepository performs event CRUD against the backend. Mutations carry
// the admin bearer token.
type EventsRepository struct {
	c *Client
}

// EventListOptions narrows an event listing.
type EventListOptions struct {
	Lang  i18n.Language
	Admin bool
}

// List fetches the event collection. A null body decodes to an empty slice.
func (r *EventsRepository) List(ctx context.Context, opts EventListOptions) ([]entities.Event, error) {
	query := url.Values{}
	if opts.Lang != "" {
		query.Set("lang", string(opts.Lang))
	}
	if opts.Admin {
		query.Set("admin", "true")
	}

	var items []entities.Event
	if err := r.c.getJSON(ctx, "/api/events", query, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.Event{}
	}
	return items, nil
}

// Create submits a new event, multipart when an image travels with it. The
// returned record carries the backend-assigned id and image URL.
func (r *EventsRepository) Create(ctx context.Context, in entities.EventInput, image *Attachment) (*entities.Event, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var created entities.Event
	if image != nil {
		if err := r.c.sendMultipart(ctx, http.MethodPost, "/api/events", eventFields(in), []Attachment{*image}, true, &created); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPost, "/api/events", in, true, &created); err != nil {
			return nil, err
		}
	}
	return &created, nil
}

// Update replaces an event's fields, keeping the stored image unless a new
// one is attached.
func (r *EventsRepository) Update(ctx context.Context, id string, in entities.EventInput, image *Attachment) (*entities.Event, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}

	var updated entities.Event
	if image != nil {
		if err := r.c.sendMultipart(ctx, http.MethodPut, "/api/events/"+id, eventFields(in), []Attachment{*image}, true, &updated); err != nil {
			return nil, err
		}
	} else {
		if err := r.c.sendJSON(ctx, http.MethodPut, "/api/events/"+id, in, true, &updated); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

// Remove deletes an event. Confirmation happens at the UI layer before this
// call is issued.
func (r *EventsRepository) Remove(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/api/events/"+id, true)
}

func eventFields(in entities.EventInput) map[string]string {
	return map[string]string{
		"title":         in.Title,
		"title_k":       in.TitleK,
		"description":   in.Description,
		"description_k": in.DescriptionK,
		"date":          in.Date,
		"eventTime":     in.EventTime,
		"location":      in.Location,
		"link":          in.Link,
	}
}
