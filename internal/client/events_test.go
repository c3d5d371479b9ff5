package client

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kalasangha.client/internal/domain/entities"
	"kalasangha.client/internal/i18n"
)

func TestEvents_ListQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})
	c, _, _ := newTestClient(t, handler)
	ctx := context.Background()

	_, err := c.Events().List(ctx, EventListOptions{Lang: i18n.Kannada, Admin: true})
	require.NoError(t, err)
	require.Equal(t, []string{"kn"}, gotQuery["lang"])
	require.Equal(t, []string{"true"}, gotQuery["admin"])

	_, err = c.Events().List(ctx, EventListOptions{})
	require.NoError(t, err)
	require.NotContains(t, gotQuery, "lang")
	require.NotContains(t, gotQuery, "admin")
}

func TestEvents_NullBodyDecodesToEmptySlice(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})
	c, _, _ := newTestClient(t, handler)

	items, err := c.Events().List(context.Background(), EventListOptions{})
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestEvents_CreateWithoutImageIsJSON(t *testing.T) {
	var gotContentType string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"title":"T","description":"D","date":"2026-01-01"}`))
	})
	c, _, _ := newTestClient(t, handler)

	_, err := c.Events().Create(context.Background(), entities.EventInput{
		Title: "T", Description: "D", Date: "2026-01-01",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
}

func TestEvents_CreateWithImageIsMultipart(t *testing.T) {
	var gotContentType, gotTitleK string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotTitleK = r.FormValue("title_k")
		_, _, err := r.FormFile("image")
		require.NoError(t, err)
		_, _ = w.Write([]byte(`{"title":"T","description":"D","date":"2026-01-01","imageUrl":"/uploads/x.png"}`))
	})
	c, _, _ := newTestClient(t, handler)

	image := &Attachment{Field: "image", Filename: "poster.png", Reader: strings.NewReader("PNG")}
	created, err := c.Events().Create(context.Background(), entities.EventInput{
		Title: "T", TitleK: "ಟಿ", Description: "D", Date: "2026-01-01",
	}, image)
	require.NoError(t, err)
	require.Contains(t, gotContentType, "multipart/form-data")
	require.Equal(t, "ಟಿ", gotTitleK)
	require.Equal(t, "/uploads/x.png", created.ImageURL.String)
}

func TestTeams_ListUnwrapsEnvelope(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"teams":[{"team_name":"Dance","order":1}]}`))
	})
	c, _, _ := newTestClient(t, handler)

	teams, err := c.Teams().List(context.Background())
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Equal(t, "Dance", teams[0].Name)
}

func TestTeams_RosterNilSlicesBecomeEmpty(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"team_name":"Dance"}`))
	})
	c, _, _ := newTestClient(t, handler)

	roster, err := c.Teams().Roster(context.Background(), "some-id")
	require.NoError(t, err)
	require.NotNil(t, roster.Heads)
	require.NotNil(t, roster.Members)
	require.Empty(t, roster.Heads)
	require.Empty(t, roster.Members)
}

func TestTeams_ReorderPayload(t *testing.T) {
	var gotPath, gotBody string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		_, _ = w.Write([]byte(`{"message":"Team order updated"}`))
	})
	c, _, _ := newTestClient(t, handler)

	require.NoError(t, c.Teams().Reorder(context.Background(), "abc", 3))
	require.Equal(t, "/api/teams/abc/order", gotPath)
	require.JSONEq(t, `{"order":3}`, gotBody)
}

func TestGallery_UploadRequiresMedia(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { requests++ })
	c, _, _ := newTestClient(t, handler)

	_, err := c.Gallery().Upload(context.Background(), entities.GalleryInput{
		Title: "Annual day", MediaType: entities.MediaImage,
	}, Attachment{})
	require.Error(t, err)
	require.Zero(t, requests)
}
