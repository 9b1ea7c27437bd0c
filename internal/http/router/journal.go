package router

import (
	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/handler"
	"mindhaven.app/server/internal/service"
)

func registerJournalRoutes(r *gin.Engine, services *service.Services) {
	h := handler.NewJournalHandler(services.Journal())

	journal := r.Group("/journal")
	{
		journal.POST("", h.Create)
		journal.GET("/:username", h.List)
		journal.GET("/:username/stats", h.Stats)
		journal.DELETE("/:id", h.Delete)
	}
}
