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

type AnnouncementHandler struct {
	repo  repositories.AnnouncementRepository
	files *uploads.Store
}

func NewAnnouncementHandler(repo repositories.AnnouncementRepository, files *uploads.Store) *AnnouncementHandler {
	return &AnnouncementHandler{repo: repo, files: files}
}

// ListAnnouncements returns the board wrapped in a success envelope.
// GET /api/announcements?lang=&_v=
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"success":       true,
		"announcements": items,
	})
}

// CreateAnnouncement creates an announcement, multipart when media travels
// with the form.
// POST /api/announcements
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	input, mediaURL, mediaType, err := h.bindAnnouncement(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	announcement := &entities.Announcement{
		Title:     strings.TrimSpace(input.Title),
		TitleK:    strings.TrimSpace(input.TitleK),
		Message:   strings.TrimSpace(input.Message),
		MessageK:  strings.TrimSpace(input.MessageK),
		Link:      null.NewString(input.Link, input.Link != ""),
		Date:      null.NewString(input.Date, input.Date != ""),
		MediaURL:  null.NewString(mediaURL, mediaURL != ""),
		MediaType: null.NewString(mediaType, mediaType != ""),
	}
	if announcement.Title == "" || announcement.Message == "" {
		response.Error(c, domainerrors.BadRequest("title and message are required"))
		return
	}

	if err := h.repo.Create(c.Request.Context(), announcement); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, announcement)
}

// UpdateAnnouncement replaces an announcement's fields.
// PUT /api/announcements/:id
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid announcement ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("announcement not found"))
			return
		}
		response.Error(c, err)
		return
	}

	input, mediaURL, mediaType, err := h.bindAnnouncement(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	existing.Title = strings.TrimSpace(input.Title)
	existing.TitleK = strings.TrimSpace(input.TitleK)
	existing.Message = strings.TrimSpace(input.Message)
	existing.MessageK = strings.TrimSpace(input.MessageK)
	existing.Link = null.NewString(input.Link, input.Link != "")
	existing.Date = null.NewString(input.Date, input.Date != "")
	if mediaURL != "" {
		if existing.MediaURL.Valid {
			_ = h.files.Remove(existing.MediaURL.String)
		}
		existing.MediaURL = null.StringFrom(mediaURL)
		existing.MediaType = null.NewString(mediaType, mediaType != "")
	}

	if err := h.repo.Update(c.Request.Context(), existing); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("announcement not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, existing)
}

// DeleteAnnouncement removes an announcement and its stored media.
// DELETE /api/announcements/:id
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid announcement ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("announcement not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	if existing.MediaURL.Valid {
		_ = h.files.Remove(existing.MediaURL.String)
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Announcement deleted"})
}

func (h *AnnouncementHandler) bindAnnouncement(c *gin.Context) (entities.AnnouncementInput, string, string, error) {
	var input entities.AnnouncementInput

	if isMultipart(c) {
		input = entities.AnnouncementInput{
			Title:    c.PostForm("title"),
			TitleK:   c.PostForm("title_k"),
			Message:  c.PostForm("message"),
			MessageK: c.PostForm("message_k"),
			Link:     c.PostForm("link"),
			Date:     c.PostForm("date"),
		}
		mediaType := c.PostForm("mediaType")
		if fh := formFile(c, "media"); fh != nil {
			if mediaType != string(entities.MediaImage) && mediaType != string(entities.MediaVideo) {
				return input, "", "", domainerrors.BadRequest("mediaType must be image or video")
			}
			url, err := h.files.Save(fh)
			if err != nil {
				return input, "", "", domainerrors.InternalError(err)
			}
			return input, url, mediaType, nil
		}
		return input, "", "", nil
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		return input, "", "", domainerrors.BadRequest(err.Error())
	}
	return input, "", "", nil
}
