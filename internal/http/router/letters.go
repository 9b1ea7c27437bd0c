package router

import (
	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/handler"
	"mindhaven.app/server/internal/service"
)

func registerLetterRoutes(r *gin.Engine, services *service.Services) {
	h := handler.NewLetterHandler(services.Board())

	letters := r.Group("/letters")
	{
		letters.POST("", h.Submit)
		letters.GET("", h.Fetch)
		letters.GET("/recent", h.Recent)
		letters.POST("/:id/like", h.Like)
		letters.POST("/:id/reply", h.Reply)
		letters.DELETE("/:id", h.Delete)
	}
}
