package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/domain/repositories"
	"kalasangha.client/internal/infrastructure/uploads"
	"kalasangha.client/internal/interfaces/http/response"
)

type GalleryHandler struct {
	repo  repositories.GalleryRepository
	files *uploads.Store
}

func NewGalleryHandler(repo repositories.GalleryRepository, files *uploads.Store) *GalleryHandler {
	return &GalleryHandler{repo: repo, files: files}
}

// ListGallery returns the gallery as a bare array.
// GET /api/gallery
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// UploadGalleryItem stores one media file and its description. The served
// URL is assigned here and echoed back.
// POST /api/gallery
func (h *GalleryHandler) UploadGalleryItem(c *gin.Context) {
	desc := strings.TrimSpace(c.PostForm("desc"))
	mediaType := c.PostForm("mediaType")
	if desc == "" {
		response.Error(c, domainerrors.BadRequest("desc is required"))
		return
	}
	if mediaType != string(entities.MediaImage) && mediaType != string(entities.MediaVideo) {
		response.Error(c, domainerrors.BadRequest("mediaType must be image or video"))
		return
	}

	fh := formFile(c, "media")
	if fh == nil {
		response.Error(c, domainerrors.BadRequest("media file is required"))
		return
	}

	url, err := h.files.Save(fh)
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	item := &entities.GalleryItem{
		Title:     desc,
		MediaURL:  url,
		MediaType: entities.MediaType(mediaType),
	}
	if err := h.repo.Create(c.Request.Context(), item); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, item)
}

// DeleteGalleryItem removes a media item and its stored file.
// DELETE /api/gallery/:id
func (h *GalleryHandler) DeleteGalleryItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid gallery ID"))
		return
	}

	existing, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("gallery item not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	_ = h.files.Remove(existing.MediaURL)

	response.Success(c, http.StatusOK, gin.H{"message": "Gallery item deleted"})
}
