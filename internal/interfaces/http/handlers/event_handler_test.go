package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/infrastructure/uploads"
)

type eventRepoStub struct {
	items map[uuid.UUID]*entities.Event
}

func newEventRepoStub() *eventRepoStub {
	return &eventRepoStub{items: map[uuid.UUID]*entities.Event{}}
}

func (s *eventRepoStub) Create(_ context.Context, event *entities.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	s.items[event.ID] = event
	return nil
}

func (s *eventRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Event, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return item, nil
}

func (s *eventRepoStub) List(_ context.Context, includeUnpublished bool) ([]*entities.Event, error) {
	out := make([]*entities.Event, 0, len(s.items))
	for _, item := range s.items {
		if item.Published || includeUnpublished {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *eventRepoStub) Update(_ context.Context, event *entities.Event) error {
	if _, ok := s.items[event.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[event.ID] = event
	return nil
}

func (s *eventRepoStub) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func newEventTestRouter(t *testing.T) (*gin.Engine, *eventRepoStub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	files, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	repo := newEventRepoStub()
	handler := NewEventHandler(repo, files)

	r := gin.New()
	r.GET("/api/events", handler.ListEvents)
	r.POST("/api/events", handler.CreateEvent)
	r.PUT("/api/events/:id", handler.UpdateEvent)
	r.DELETE("/api/events/:id", handler.DeleteEvent)
	return r, repo
}

func TestCreateEvent_JSON(t *testing.T) {
	r, repo := newEventTestRouter(t)

	body, _ := json.Marshal(gin.H{
		"title":       "  Ugadi  ",
		"description": "New year",
		"date":        "2026-03-20",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "Ugadi", created.Title, "whitespace is trimmed")
	require.True(t, created.Published, "handler-created events are published")
	require.Len(t, repo.items, 1)
}

func TestCreateEvent_MissingRequiredFields(t *testing.T) {
	r, _ := newEventTestRouter(t)

	body, _ := json.Marshal(gin.H{"title": "No description"})
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEvent_MultipartWithImage(t *testing.T) {
	r, _ := newEventTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "Annual Day"))
	require.NoError(t, mw.WriteField("description", "Celebration"))
	require.NoError(t, mw.WriteField("date", "2026-12-01"))
	part, err := mw.CreateFormFile("image", "poster.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("PNGDATA"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/events", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created entities.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.True(t, created.ImageURL.Valid)
	require.Contains(t, created.ImageURL.String, uploads.URLPrefix)
}

func TestListEvents_AdminFlag(t *testing.T) {
	r, repo := newEventTestRouter(t)
	require.NoError(t, repo.Create(context.Background(), &entities.Event{
		Title: "Draft", Description: "d", Date: "2026-01-01", Published: false,
	}))
	require.NoError(t, repo.Create(context.Background(), &entities.Event{
		Title: "Public", Description: "d", Date: "2026-01-02", Published: true,
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))
	var public []entities.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &public))
	require.Len(t, public, 1)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events?admin=true", nil))
	var all []entities.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.Len(t, all, 2)
}

func TestUpdateEvent_NotFoundAndBadID(t *testing.T) {
	r, _ := newEventTestRouter(t)

	body, _ := json.Marshal(gin.H{"title": "x", "description": "y", "date": "2026-01-01"})
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+uuid.NewString(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/api/events/not-a-uuid", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteEvent(t *testing.T) {
	r, repo := newEventTestRouter(t)
	event := &entities.Event{Title: "x", Description: "y", Date: "2026-01-01", Published: true}
	require.NoError(t, repo.Create(context.Background(), event))

	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+event.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, repo.items)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events/"+event.ID.String(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}
