package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/session"
	"kalasangha.client/pkg/logger"
)

// Attachment is a file travelling with a multipart mutation. The backend
// stores it and assigns the public URL.
type Attachment struct {
	Field    string
	Filename string
	Reader   io.Reader
}

// Client is the shared HTTP core behind every entity repository. It owns the
// base URL, the timeout, bearer attachment from the token store, and the
// mapping of failures onto the domain error taxonomy.
type Client struct {
	baseURL       string
	http          *http.Client
	store         session.TokenStore
	onAuthFailure func(context.Context)
	validate      *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithAuthFailureHook registers the hook fired when the backend answers a
// call with 401/403. Wired to the route guard's invalidation path.
func WithAuthFailureHook(fn func(context.Context)) Option {
	return func(c *Client) { c.onAuthFailure = fn }
}

// New creates a client against the given API base URL.
func New(baseURL string, timeout time.Duration, store session.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		store:    store,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Events returns the event repository.
func (c *Client) Events() *EventsRepository { return &EventsRepository{c: c} }

// Announcements returns the announcement repository.
func (c *Client) Announcements() *AnnouncementsRepository { return &AnnouncementsRepository{c: c} }

// Teams returns the team and member repository.
func (c *Client) Teams() *TeamsRepository { return &TeamsRepository{c: c} }

// Gallery returns the gallery repository.
func (c *Client) Gallery() *GalleryRepository { return &GalleryRepository{c: c} }

// Auth returns the auth service.
func (c *Client) Auth() *AuthService { return &AuthService{c: c} }

// Contact returns the contact form service.
func (c *Client) Contact() *ContactService { return &ContactService{c: c} }

func (c *Client) validateInput(in any) error {
	if err := c.validate.Struct(in); err != nil {
		return domainerrors.Validation(err.Error())
	}
	return nil
}

// do issues one request and returns the response body. withAuth attaches the
// stored bearer token when one exists; a missing token is sent as-is and left
// for the backend to reject.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, withAuth bool) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, domainerrors.Network(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if withAuth {
		if token, err := c.store.Load(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domainerrors.Network(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.Network(err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	appErr := domainerrors.FromStatus(resp.StatusCode, errorMessage(data))
	if domainerrors.IsAuthFailure(appErr) {
		logger.Warn(ctx, "backend rejected credentials",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		if c.onAuthFailure != nil {
			c.onAuthFailure(ctx)
		}
	}
	return nil, appErr
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil, "", false)
	if err != nil {
		return err
	}
	return decodeJSON(data, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, withAuth bool, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return domainerrors.Decode(err)
	}
	data, err := c.do(ctx, method, path, nil, bytes.NewReader(body), "application/json", withAuth)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeJSON(data, out)
}

func (c *Client) sendMultipart(ctx context.Context, method, path string, fields map[string]string, attachments []Attachment, withAuth bool, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return domainerrors.Network(err)
		}
	}
	for _, att := range attachments {
		part, err := w.CreateFormFile(att.Field, att.Filename)
		if err != nil {
			return domainerrors.Network(err)
		}
		if _, err := io.Copy(part, att.Reader); err != nil {
			return domainerrors.Network(err)
		}
	}
	if err := w.Close(); err != nil {
		return domainerrors.Network(err)
	}

	data, err := c.do(ctx, method, path, nil, &buf, w.FormDataContentType(), withAuth)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeJSON(data, out)
}

func (c *Client) delete(ctx context.Context, path string, withAuth bool) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "", withAuth)
	return err
}

func decodeJSON(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return domainerrors.Decode(err)
	}
	return nil
}

// errorMessage pulls a human-readable message out of an error body, falling
// back to the raw text.
func errorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = "request rejected"
	}
	return msg
}
