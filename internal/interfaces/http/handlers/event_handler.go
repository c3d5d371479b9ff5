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

type EventHandler struct {
	repo  repositories.EventRepository
	files *uploads.Store
}

func NewEventHandler(repo repositories.EventRepository, files *uploads.Store) *EventHandler {
	return &EventHandler{repo: repo, files: files}
}

// ListEvents returns the event collection as a bare array. admin=true
// includes unpublished events.
// GET /api/events?lang=&admin=true
func (h *EventHandler) ListEvents(c *gin.Context) {
	admin := c.Query("admin") == "true"
	items, err := h.repo.List(c.Request.Context(), admin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// CreateEvent creates an event from an admin form, JSON or multipart with an
// optional image. The assigned id and image URL come back in the body.
// POST /api/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	input, imageURL, err := h.bindEvent(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	event := &entities.Event{
		Title:        strings.TrimSpace(input.Title),
		TitleK:       strings.TrimSpace(input.TitleK),
		Description:  strings.TrimSpace(input.Description),
		DescriptionK: strings.TrimSpace(input.DescriptionK),
		Date:         strings.TrimSpace(input.Date),
		EventTime:    null.NewString(input.EventTime, input.EventTime != ""),
		Location:     null.NewString(input.Location, input.Location != ""),
		Link:         null.NewString(input.Link, input.Link != ""),
		ImageURL:     null.NewString(imageURL, imageURL != ""),
		Published:    true,
	}
	if event.Title == "" || event.Description == "" || event.Date == "" {
		response.Error(c, domainerrors.BadRequest("title, description, and date are required"))
		return
	}

	if err := h.repo.Create(c.Request.Context(), event); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, event)
}

// UpdateEvent replaces an event's fields, keeping the stored image unless a
// new one arrives.
// PUT /api/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid event ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	input, imageURL, err := h.bindEvent(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.TitleK = strings.TrimSpace(input.TitleK)
	existing.Description = strings.TrimSpace(input.Description)
	existing.DescriptionK = strings.TrimSpace(input.DescriptionK)
	existing.Date = strings.TrimSpace(input.Date)
	existing.EventTime = null.NewString(input.EventTime, input.EventTime != "")
	existing.Location = null.NewString(input.Location, input.Location != "")
	existing.Link = null.NewString(input.Link, input.Link != "")
	if imageURL != "" {
		if existing.ImageURL.Valid {
			_ = h.files.Remove(existing.ImageURL.String)
		}
		existing.ImageURL = null.StringFrom(imageURL)
	}

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, existing)
}

// DeleteEvent removes an event and its stored image.
// DELETE /api/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid event ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("event not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	if existing.ImageURL.Valid {
		_ = h.files.Remove(existing.ImageURL.String)
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Event deleted"})
}

func (h *EventHandler) bindEvent(c *gin.Context) (entities.EventInput, string, error) {
	var input entities.EventInput

	if isMultipart(c) {
		input = entities.EventInput{
			Title:        c.PostForm("title"),
			TitleK:       c.PostForm("title_k"),
			Description:  c.PostForm("description"),
			DescriptionK: c.PostForm("description_k"),
			Date:         c.PostForm("date"),
			EventTime:    c.PostForm("eventTime"),
			Location:     c.PostForm("location"),
			Link:         c.PostForm("link"),
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
