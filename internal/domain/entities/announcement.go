package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"kalasangha.client/internal/i18n"
)

// MediaType classifies an uploaded media attachment.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Announcement represents a notice shown on the announcements board.
type Announcement struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	TitleK    string      `json:"title_k,omitempty"`
	Message   string      `json:"message"`
	MessageK  string      `json:"message_k,omitempty"`
	Link      null.String `json:"link,omitempty"`
	Date      null.String `json:"date,omitempty"`
	MediaURL  null.String `json:"mediaUrl,omitempty"`
	MediaType null.String `json:"mediaType,omitempty"`
}

// LocalTitle returns the title in the given display language.
func (a *Announcement) LocalTitle(lang i18n.Language) string {
	return i18n.Pick(lang, a.Title, a.TitleK)
}

// LocalMessage returns the message body in the given display language.
func (a *Announcement) LocalMessage(lang i18n.Language) string {
	return i18n.Pick(lang, a.Message, a.MessageK)
}

// AnnouncementInput is the admin form payload for announcement writes.
type AnnouncementInput struct {
	Title    string `json:"title" validate:"required"`
	TitleK   string `json:"title_k"`
	Message  string `json:"message" validate:"required"`
	MessageK string `json:"message_k"`
	Link     string `json:"link" validate:"omitempty,url"`
	Date     string `json:"date"`
}
