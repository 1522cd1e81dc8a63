// Package server assembles the HTTP API.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vgm/internal/config"
	"vgm/internal/database"
	"vgm/internal/domain/events"
	"vgm/internal/domain/game"
	"vgm/internal/domain/platform"
	"vgm/internal/middleware"
	"vgm/internal/pkg/response"
	"vgm/internal/repository"
)

// New builds the router for cfg over db. The returned hub is already wired
// into the game and platform handlers.
func New(cfg *config.Config, db *gorm.DB) (*gin.Engine, *events.Hub, error) {
	sqlxDB, err := database.SQLX(db)
	if err != nil {
		return nil, nil, fmt.Errorf("wrap pool: %w", err)
	}

	hub := events.NewHub()

	gameRepo := game.NewRepository(sqlxDB)
	gameHandler := game.NewHandler(game.NewService(gameRepo), hub, cfg.Port)

	platformRepo := repository.NewPlatformRepository(db)
	platformHandler := platform.NewHandler(platform.NewService(platformRepo, gameRepo), hub, cfg.Port)

	eventsHandler := events.NewHandler(hub, cfg.CORSAllowedOrigins)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/healthz", health(db))

	api := r.Group("/api")
	{
		game.RegisterRoutes(api, gameHandler)
		platform.RegisterRoutes(api, platformHandler)
		eventsHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	return r, hub, nil
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
