package client_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kalasangha.client/internal/client"
	"kalasangha.client/internal/config"
	"kalasangha.client/internal/domain/entities"
	domainerrors "kalasangha.client/internal/domain/errors"
	"kalasangha.client/internal/i18n"
	"kalasangha.client/internal/infrastructure/models"
	"kalasangha.client/internal/interfaces/http/router"
	"kalasangha.client/internal/session"
	listsync "kalasangha.client/internal/sync"
)

// startBackend boots the full dev backend over in-memory sqlite and returns a
// wired client, its token store, and the route guard.
func startBackend(t *testing.T) (*client.Client, session.TokenStore, *session.Guard) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("UPLOAD_DIR", filepath.Join(t.TempDir(), "uploads"))

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Event{},
		&models.Announcement{},
		&models.Team{},
		&models.Member{},
		&models.GalleryItem{},
		&models.ContactMessage{},
	))

	cfg := config.Load()
	r, err := router.Assemble(cfg, db)
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)
	guard := session.NewGuard(store, nil)

	c := client.New(srv.URL, 5*time.Second, store,
		client.WithAuthFailureHook(func(ctx context.Context) {
			guard.Invalidate(ctx)
		}))
	return c, store, guard
}

func login(t *testing.T, c *client.Client) {
	t.Helper()
	_, err := c.Auth().Login(context.Background(), "admin@kalasangha.club", "admin")
	require.NoError(t, err)
}

func TestIntegration_LoginFlow(t *testing.T) {
	c, store, guard := startBackend(t)
	ctx := context.Background()

	_, err := c.Auth().Login(ctx, "admin@kalasangha.club", "wrong")
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	require.Equal(t, session.Redirecting, guard.State(), "rejected credentials trip the guard")
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoToken)

	token, err := c.Auth().Login(ctx, "admin@kalasangha.club", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, session.StateValid, session.Classify(token).State)

	// A redirected guard is terminal for its mount; a fresh visit gets a
	// fresh guard over the same store.
	remount := session.NewGuard(store, nil)
	require.Equal(t, session.Authorized, remount.Evaluate(ctx))

	require.NoError(t, c.Auth().Logout(ctx))
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestIntegration_EventLifecycle(t *testing.T) {
	c, _, _ := startBackend(t)
	ctx := context.Background()
	login(t, c)

	repo := c.Events()
	lst := listsync.NewList(func(ctx context.Context) ([]entities.Event, error) {
		return repo.List(ctx, client.EventListOptions{Admin: true})
	})

	snap, err := lst.Mutate(ctx, func(ctx context.Context) error {
		_, err := repo.Create(ctx, entities.EventInput{
			Title:       "Rangoli Workshop",
			TitleK:      "ರಂಗೋಲಿ ಕಾರ್ಯಾಗಾರ",
			Description: "Hands-on rangoli session",
			Date:        "2026-09-15",
			Location:    "Main hall",
		}, nil)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, listsync.Ready, snap.Status)
	require.Len(t, snap.Items, 1)

	created := snap.Items[0]
	require.Equal(t, "Rangoli Workshop", created.Title)
	require.Equal(t, "ರಂಗೋಲಿ ಕಾರ್ಯಾಗಾರ", created.LocalTitle(i18n.Kannada))

	updated, err := repo.Update(ctx, created.ID.String(), entities.EventInput{
		Title:       "Rangoli Workshop",
		Description: "Hands-on rangoli session",
		Date:        "2026-09-16",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "2026-09-16", updated.Date)

	snap, err = lst.Mutate(ctx, func(ctx context.Context) error {
		return repo.Remove(ctx, created.ID.String())
	})
	require.NoError(t, err)
	require.Empty(t, snap.Items)
}

func TestIntegration_EventCreateWithImage(t *testing.T) {
	c, _, _ := startBackend(t)
	ctx := context.Background()
	login(t, c)

	image := &client.Attachment{Field: "image", Filename: "poster.png", Reader: strings.NewReader("PNGDATA")}
	created, err := c.Events().Create(ctx, entities.EventInput{
		Title: "Annual Day", Description: "Yearly celebration", Date: "2026-12-01",
	}, image)
	require.NoError(t, err)
	require.True(t, created.ImageURL.Valid)
	require.True(t, strings.HasPrefix(created.ImageURL.String, "/uploads/"))
}

func TestIntegration_UnauthorizedMutationInvalidatesGuard(t *testing.T) {
	c, store, guard := startBackend(t)
	ctx := context.Background()

	_, err := c.Events().Create(ctx, entities.EventInput{
		Title: "T", Description: "D", Date: "2026-01-01",
	}, nil)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	require.Equal(t, session.Redirecting, guard.State())
	_, err = store.Load(ctx)
	require.ErrorIs(t, err, domainerrors.ErrNoToken)
}

func TestIntegration_AnnouncementsWithoutAuth(t *testing.T) {
	c, _, _ := startBackend(t)
	ctx := context.Background()

	// No login: the deployed contract leaves announcement writes open.
	created, err := c.Announcements().Create(ctx, entities.AnnouncementInput{
		Title:    "Auditions",
		TitleK:   "ಆಡಿಷನ್",
		Message:  "Sign up at the office",
		MessageK: "ಕಚೇರಿಯಲ್ಲಿ ನೋಂದಾಯಿಸಿ",
	}, nil, "")
	require.NoError(t, err)

	items, err := c.Announcements().List(ctx, i18n.Kannada)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "ಆಡಿಷನ್", items[0].LocalTitle(i18n.Kannada))
	require.Equal(t, "Auditions", items[0].LocalTitle(i18n.English))

	require.NoError(t, c.Announcements().Remove(ctx, created.ID.String()))
	items, err = c.Announcements().List(ctx, i18n.English)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestIntegration_TeamRosterAndOrdering(t *testing.T) {
	c, _, _ := startBackend(t)
	ctx := context.Background()
	login(t, c)

	repo := c.Teams()
	dance, err := repo.Create(ctx, entities.TeamInput{Name: "Dance", NameK: "ನೃತ್ಯ", Order: 2}, nil)
	require.NoError(t, err)
	music, err := repo.Create(ctx, entities.TeamInput{Name: "Music", Order: 1}, nil)
	require.NoError(t, err)

	teams, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	require.Equal(t, "Music", teams[0].Name, "teams sorted by display order")
	require.Equal(t, "Dance", teams[1].Name)

	require.NoError(t, repo.Reorder(ctx, music.ID.String(), 5))
	teams, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Dance", teams[0].Name)

	head, err := repo.AddMember(ctx, dance.ID.String(), entities.MemberInput{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Role: entities.RoleHead,
	}, nil)
	require.NoError(t, err)
	_, err = repo.AddMember(ctx, dance.ID.String(), entities.MemberInput{
		Name: "Ravi", Email: "ravi@example.com", Phone: "9876500000", Role: entities.RoleMember,
	}, nil)
	require.NoError(t, err)

	roster, err := repo.Roster(ctx, dance.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Dance", roster.TeamName)
	require.Len(t, roster.Heads, 1)
	require.Len(t, roster.Members, 1)
	require.Equal(t, "Asha", roster.Heads[0].Name)

	require.NoError(t, repo.RemoveMember(ctx, head.ID.String()))
	roster, err = repo.Roster(ctx, dance.ID.String())
	require.NoError(t, err)
	require.Empty(t, roster.Heads)

	// Deleting the team cascades to its members.
	require.NoError(t, repo.Remove(ctx, dance.ID.String()))
	_, err = repo.Roster(ctx, dance.ID.String())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestIntegration_GalleryLifecycle(t *testing.T) {
	c, _, _ := startBackend(t)
	ctx := context.Background()

	media := client.Attachment{Field: "media", Filename: "show.jpg", Reader: strings.NewReader("JPEG")}
	created, err := c.Gallery().Upload(ctx, entities.GalleryInput{
		Title: "Annual day highlights", MediaType: entities.MediaImage,
	}, media)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(created.MediaURL, "/uploads/"))

	items, err := c.Gallery().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Annual day highlights", items[0].Title)

	require.NoError(t, c.Gallery().Remove(ctx, created.ID.String()))
	items, err = c.Gallery().List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestIntegration_ContactForm(t *testing.T) {
	c, _, _ := startBackend(t)
	ctx := context.Background()

	require.NoError(t, c.Contact().Send(ctx, entities.ContactInput{
		Name: "Visitor", Email: "visitor@example.com", Message: "When is the next show?",
	}))

	err := c.Contact().Send(ctx, entities.ContactInput{Name: "X"})
	require.ErrorIs(t, err, domainerrors.ErrValidation)
}
