package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wvwild/adventure-hub/internal/infra/config"
	"github.com/wvwild/adventure-hub/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger))
	{
		api.GET("/adventures", handler.SearchAdventures)
		api.GET("/adventures/facets", handler.Facets)
		api.GET("/adventures/:id", handler.GetAdventure)

		api.POST("/filter-sessions", handler.OpenSession)
		api.GET("/filter-sessions/:id", handler.GetSession)
		api.POST("/filter-sessions/:id/actions", handler.DispatchAction)
		api.POST("/filter-sessions/:id/toggle", handler.ToggleFilter)
		api.DELETE("/filter-sessions/:id", handler.CloseSession)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
