package client

import (
	"context"
	"net/http"

	domainerrors "kalasangha.client/internal/domain/errors"
)

// AuthService performs admin login and logout against the backend and keeps
// the token store in step.
type AuthService struct {
	c *Client
}

// Login exchanges credentials for a bearer token and persists it. The token's
// signature is never checked client-side; only the backend can do that.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		Error   string `json:"error"`
	}
	if err := s.c.sendJSON(ctx, http.MethodPost, "/api/auth/login", payload, false, &body); err != nil {
		return "", err
	}
	if !body.Success || body.Token == "" {
		msg := body.Error
		if msg == "" {
			msg = "login rejected"
		}
		return "", domainerrors.Unauthorized(msg)
	}

	if err := s.c.store.Save(ctx, body.Token); err != nil {
		return "", err
	}
	return body.Token, nil
}

// Logout discards the stored token. Purely local; the backend keeps no
// session state.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.store.Clear(ctx)
}
