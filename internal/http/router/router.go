package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/http/middleware"
	"mindhaven.app/server/internal/service"
)

// Setup builds the gin engine with all routes and shared middleware.
func Setup(cfg config.Config, services *service.Services) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery())
	if cfg.OTel.Enabled() {
		r.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// Generative endpoints get a tighter budget than the rest of the API.
	apiLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)
	llmLimiter := middleware.NewRateLimiter(rate.Limit(0.5), 5)
	r.Use(apiLimiter.Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerLetterRoutes(r, services)
	registerChatRoutes(r, llmLimiter, services)
	registerJournalRoutes(r, services)
	registerDiscoverRoutes(r, services)
	registerAuthRoutes(r, cfg, services)

	return r
}
