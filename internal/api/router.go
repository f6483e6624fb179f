package api

import (
	"net/http"

	"wm-genai-governance/config"
	"wm-genai-governance/internal/api/v1/demo"
	"wm-genai-governance/internal/api/v1/governance"
	"wm-genai-governance/internal/api/v1/inference"
	"wm-genai-governance/internal/metrics"
	"wm-genai-governance/internal/middleware"
	"wm-genai-governance/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route. Storage and the demo session manager must be set up first.
func NewRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/health", Health)
	router.GET("/metrics", metrics.MetricsHandler())

	web.BackendURL = cfg.DemoBackendURL
	web.RegisterRoutes(router)

	// Model endpoints the demo page calls.
	inference.RegisterRoutes(router.Group("/api"))

	v1 := router.Group("/api/v1")
	{
		governance.RegisterRoutes(v1)
		demo.RegisterRoutes(v1)
	}

	return router
}
