package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/dto"
	"mindhaven.app/server/internal/service"
)

// DiscoverHandler serves the nearby-facility finder and news search.
type DiscoverHandler struct {
	places service.PlacesService
	news   service.NewsService
}

func NewDiscoverHandler(places service.PlacesService, news service.NewsService) *DiscoverHandler {
	return &DiscoverHandler{places: places, news: news}
}

// NearbyPlaces handles GET /places/nearby.
func (h *DiscoverHandler) NearbyPlaces(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}
	radius, _ := strconv.Atoi(c.DefaultQuery("radius", "0"))

	places, err := h.places.FindNearby(c.Request.Context(), lat, lon, radius)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find nearby places"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPlaceResponses(places))
}

// News handles GET /news.
func (h *DiscoverHandler) News(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	articles, err := h.news.Search(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		if errors.Is(err, service.ErrUnconfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "news search is not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search news"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponses(articles))
}
