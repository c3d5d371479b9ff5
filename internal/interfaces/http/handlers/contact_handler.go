package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/domain/repositories"
	"kalasangha.client/internal/interfaces/http/response"
)

type ContactHandler struct {
	repo repositories.ContactRepository
}

func NewContactHandler(repo repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

// SubmitContact stores one public contact-form message.
// POST /api/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var input entities.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Message = strings.TrimSpace(input.Message)
	if input.Name == "" || input.Email == "" || input.Message == "" {
		response.Error(c, domainerrors.BadRequest("name, email, and message are required"))
		return
	}

	if err := h.repo.Create(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}
