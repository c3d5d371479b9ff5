package entities

import "github.com/google/uuid"

// GalleryItem represents one photo or video on the gallery page.
type GalleryItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"desc"`
	MediaURL  string    `json:"mediaUrl"`
	MediaType MediaType `json:"mediaType"`
}

// GalleryInput is the admin form payload for a gallery upload. The media file
// itself travels as a multipart attachment; the backend assigns the URL.
type GalleryInput struct {
	Title     string    `json:"desc" validate:"required"`
	MediaType MediaType `json:"mediaType" validate:"required,oneof=image video"`
}
