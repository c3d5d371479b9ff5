package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"kalasangha.client/internal/config"
	"kalasangha.client/internal/infrastructure/repositories"
	"kalasangha.client/internal/infrastructure/uploads"
	"kalasangha.client/internal/interfaces/http/handlers"
	"kalasangha.client/internal/interfaces/http/middleware"
	"kalasangha.client/pkg/jwt"
)

// Deps carries the wired handlers for route registration.
type Deps struct {
	Auth          *handlers.AuthHandler
	Events        *handlers.EventHandler
	Announcements *handlers.AnnouncementHandler
	Teams         *handlers.TeamHandler
	Gallery       *handlers.GalleryHandler
	Contact       *handlers.ContactHandler
	RequireAuth   gin.HandlerFunc
	UploadDir     string
}

// Assemble builds the full dev backend router from config and an open
// database handle. Shared by cmd/devserver and the integration tests.
func Assemble(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	files, err := uploads.NewStore(cfg.Server.UploadDir)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	eventRepo := repositories.NewEventRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	galleryRepo := repositories.NewGalleryRepository(db)
	contactRepo := repositories.NewContactRepository(db)

	return New(Deps{
		Auth:          handlers.NewAuthHandler(cfg.Admin, jwtService),
		Events:        handlers.NewEventHandler(eventRepo, files),
		Announcements: handlers.NewAnnouncementHandler(announcementRepo, files),
		Teams:         handlers.NewTeamHandler(teamRepo, memberRepo, files),
		Gallery:       handlers.NewGalleryHandler(galleryRepo, files),
		Contact:       handlers.NewContactHandler(contactRepo),
		RequireAuth:   middleware.AuthMiddleware(jwtService),
		UploadDir:     files.Dir(),
	}), nil
}

// New registers the site's REST contract on a fresh engine. Announcement and
// gallery writes are intentionally unguarded, mirroring the deployed
// backend's observed behavior.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", d.UploadDir)

	api := r.Group("/api")
	{
		api.POST("/auth/login", d.Auth.Login)
		api.POST("/contact", d.Contact.SubmitContact)

		events := api.Group("/events")
		{
			events.GET("", d.Events.ListEvents)
			events.POST("", d.RequireAuth, d.Events.CreateEvent)
			events.PUT("/:id", d.RequireAuth, d.Events.UpdateEvent)
			events.DELETE("/:id", d.RequireAuth, d.Events.DeleteEvent)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", d.Announcements.ListAnnouncements)
			announcements.POST("", d.Announcements.CreateAnnouncement)
			announcements.PUT("/:id", d.Announcements.UpdateAnnouncement)
			announcements.DELETE("/:id", d.Announcements.DeleteAnnouncement)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", d.Teams.ListTeams)
			teams.GET("/:id/members", d.Teams.GetRoster)
			teams.POST("", d.RequireAuth, d.Teams.CreateTeam)
			teams.PUT("/:id", d.RequireAuth, d.Teams.UpdateTeam)
			teams.POST("/:id/order", d.RequireAuth, d.Teams.ReorderTeam)
			teams.DELETE("/:id", d.RequireAuth, d.Teams.DeleteTeam)
			teams.POST("/:id/members", d.RequireAuth, d.Teams.AddMember)
			teams.PUT("/members/:id", d.RequireAuth, d.Teams.UpdateMember)
			teams.DELETE("/members/:id", d.RequireAuth, d.Teams.DeleteMember)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", d.Gallery.ListGallery)
			gallery.POST("", d.Gallery.UploadGalleryItem)
			gallery.DELETE("/:id", d.Gallery.DeleteGalleryItem)
		}
	}

	return r
}
