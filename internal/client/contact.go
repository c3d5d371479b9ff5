package client

import (
	"context"
	"net/http"

	"kalasangha.client/internal/domain/entities"
)

// ContactService submits the public contact form.
type ContactService struct {
	c *Client
}

// Send delivers one contact message.
func (s *ContactService) Send(ctx context.Context, in entities.ContactInput) error {
	if err := s.c.validateInput(in); err != nil {
		return err
	}
	return s.c.sendJSON(ctx, http.MethodPost, "/api/contact", in, false, nil)
}
