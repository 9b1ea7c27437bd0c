package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/http/handler"
	"mindhaven.app/server/internal/http/middleware"
	"mindhaven.app/server/internal/service"
)

func registerAuthRoutes(r *gin.Engine, cfg config.Config, services *service.Services) {
	auth := r.Group("/auth")

	if !cfg.WorkOS.Enabled() {
		auth.GET("/login", authUnavailable)
		auth.GET("/callback", authUnavailable)
		auth.GET("/me", authUnavailable)
		auth.POST("/logout", authUnavailable)
		return
	}

	svc := services.Auth()
	h := handler.NewAuthHandler(svc, cfg)

	auth.GET("/login", h.Login)
	auth.GET("/callback", h.Callback)
	auth.GET("/me", middleware.RequireAuth(svc), h.Me)
	auth.POST("/logout", middleware.OptionalAuth(svc), h.Logout)
}

func authUnavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication is not configured"})
}
