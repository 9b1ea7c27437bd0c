package router

import (
	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/handler"
	"mindhaven.app/server/internal/service"
)

func registerDiscoverRoutes(r *gin.Engine, services *service.Services) {
	h := handler.NewDiscoverHandler(services.Places(), services.News())

	r.GET("/places/nearby", h.NearbyPlaces)
	r.GET("/news", h.News)
}
