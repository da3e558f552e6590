package app

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mritunjay-thakur/clothify/internal/sdk/middleware"
)

// Routes builds the gin engine with the full middleware chain and every
// route mounted.
func (a *App) Routes() *gin.Engine {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(a.logger))
	router.Use(middleware.Metrics(a.metrics))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/api/heartbeat", a.HandleHeartbeat)
	router.GET("/api/health/readiness", a.HandleReadiness)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.metrics, promhttp.HandlerOpts{})))

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", a.HandleSignup)
		auth.POST("/login", a.HandleLogin)
		auth.POST("/logout", a.HandleLogout)
		auth.POST("/reset-password", a.HandleResetPassword)
		auth.GET("/check", middleware.Identify(a.tokens, a.cookies, a.db), a.HandleCheckAuth)
		auth.GET("/google", a.HandleGoogleBegin)
		auth.GET("/google/callback", a.HandleGoogleCallback)

		protected := auth.Group("")
		protected.Use(middleware.RequireAuth(a.tokens, a.cookies, a.db))
		{
			protected.PUT("/edit-profile", a.HandleEditProfile)
			protected.GET("/me", a.HandleGetCurrentUser)
			protected.POST("/avatar", a.HandleUploadAvatar)
		}
	}

	// In production the server also ships the built SPA bundle; every
	// non-API miss falls through to index.html for client-side routing.
	if a.cfg.IsProduction() && a.cfg.App.StaticDir != "" {
		router.Use(static.Serve("/", static.LocalFile(a.cfg.App.StaticDir, false)))
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(http.StatusNotFound, MessageResponse{Success: false, Message: "Not found"})
				return
			}
			c.File(filepath.Join(a.cfg.App.StaticDir, "index.html"))
		})
	}

	return router
}
