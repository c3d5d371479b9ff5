package client

import (
	"context"
	"net/http"

	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
)

// GalleryRepository performs gallery media CRUD. The deployed backend accepts
// gallery writes without a bearer token; preserved as observed.
type GalleryRepository struct {
	c *Client
}

// List fetches the gallery collection.
func (r *GalleryRepository) List(ctx context.Context) ([]entities.GalleryItem, error) {
	var items []entities.GalleryItem
	if err := r.c.getJSON(ctx, "/api/gallery", nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []entities.GalleryItem{}
	}
	return items, nil
}

// Upload submits a new media item. The file is mandatory; the backend
// assigns the served URL.
func (r *GalleryRepository) Upload(ctx context.Context, in entities.GalleryInput, media Attachment) (*entities.GalleryItem, error) {
	if err := r.c.validateInput(in); err != nil {
		return nil, err
	}
	if media.Reader == nil {
		return nil, domainerrors.Validation("media file is required")
	}

	fields := map[string]string{
		"desc":      in.Title,
		"mediaType": string(in.MediaType),
	}
	var created entities.GalleryItem
	if err := r.c.sendMultipart(ctx, http.MethodPost, "/api/gallery", fields, []Attachment{media}, false, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Remove deletes a media item.
func (r *GalleryRepository) Remove(ctx context.Context, id string) error {
	return r.c.delete(ctx, "/api/gallery/"+id, false)
}
