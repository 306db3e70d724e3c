package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouterDependencies collects what the router wires together.
type RouterDependencies struct {
	Handler *Handler
	// RateLimit, when set, guards the /api group.
	RateLimit gin.HandlerFunc
	// StaticDir, when set, is served for every unmatched path.
	StaticDir string
}

// NewRouter builds the gin engine with health, API and optional static routes.
func NewRouter(logger *slog.Logger, deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiGroup := router.Group("/api")
	if deps.RateLimit != nil {
		apiGroup.Use(deps.RateLimit)
	}
	if deps.Handler != nil {
		deps.Handler.Register(apiGroup)
	}

	if deps.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(deps.StaticDir))))
	}

	return router
}
