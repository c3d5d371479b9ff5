package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"kalasangha.client/internal/i18n"
)

// Event represents a club event shown on the public events page.
type Event struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	TitleK       string      `json:"title_k,omitempty"`
	Description  string      `json:"description"`
	DescriptionK string      `json:"description_k,omitempty"`
	Date         string      `json:"date"`
	EventTime    null.String `json:"eventTime,omitempty"`
	Location     null.String `json:"location,omitempty"`
	Link         null.String `json:"link,omitempty"`
	ImageURL     null.String `json:"imageUrl,omitempty"`
	// Published is visible to admin listings only; public listings filter
	// unpublished events out server-side.
	Published bool `json:"published"`
}

// LocalTitle returns the title in the given display language.
func (e *Event) LocalTitle(lang i18n.Language) string {
	return i18n.Pick(lang, e.Title, e.TitleK)
}

// LocalDescription returns the description in the given display language.
func (e *Event) LocalDescription(lang i18n.Language) string {
	return i18n.Pick(lang, e.Description, e.DescriptionK)
}

// EventInput is the admin form payload for creating or updating an event.
type EventInput struct {
	Title        string `json:"title" validate:"required"`
	TitleK       string `json:"title_k"`
	Description  string `json:"description" validate:"required"`
	DescriptionK string `json:"description_k"`
	Date         string `json:"date" validate:"required"`
	EventTime    string `json:"eventTime"`
	Location     string `json:"location"`
	Link         string `json:"link" validate:"omitempty,url"`
}
