// Package server собирает HTTP-роутер: middleware, CORS и маршруты API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reliefmap/internal/config"
	"reliefmap/internal/features/admin"
	"reliefmap/internal/features/comments"
	"reliefmap/internal/features/landmarks"
	"reliefmap/internal/features/spots"
	"reliefmap/internal/features/votes"
	"reliefmap/internal/server/middleware"
)

// Handlers — все HTTP-обработчики приложения.
type Handlers struct {
	Spots     *spots.Handler
	Votes     *votes.Handler
	Comments  *comments.Handler
	Landmarks *landmarks.Handler
	Admin     *admin.Handler
}

// New создаёт gin-роутер со всеми маршрутами.
func New(cfg *config.Config, h *Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())

	// CORS: карта открыта любым клиентам
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Admin-Password")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Здоровье и метрики
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API
	api := r.Group("/api")
	api.Use(middleware.RateLimit(limiter))
	{
		api.GET("/locations", h.Spots.List)
		api.POST("/locations", h.Spots.Create)

		api.POST("/locations/:id/vote", h.Votes.Cast)

		api.GET("/locations/:id/comments", h.Comments.List)
		api.POST("/locations/:id/comments", h.Comments.Add)

		api.GET("/landmarks", h.Landmarks.Suggest)
		api.POST("/landmarks/reconcile", h.Landmarks.Reconcile)

		api.DELETE("/admin/locations/:id", h.Admin.RemoveSpot)
	}

	return r
}
