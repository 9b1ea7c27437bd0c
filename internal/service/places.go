package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mindhaven.app/server/common/logger"
	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/model"
)

// PlacesService finds nearby care facilities through the Overpass open
// geodata API.
type PlacesService interface {
	FindNearby(ctx context.Context, lat, lon float64, radius int) ([]model.Place, error)
}

type placesService struct {
	cfg        config.PlacesConfig
	httpClient *http.Client
	cache      *responseCache
}

func NewPlacesService(cfg config.PlacesConfig, httpClient *http.Client, redisClient *redis.Client, cacheTTL time.Duration) PlacesService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &placesService{
		cfg:        cfg,
		httpClient: httpClient,
		cache:      newResponseCache(redisClient, cacheTTL),
	}
}

// overpassAmenities are the facility types surfaced to users.
const overpassAmenities = "clinic|doctors|hospital|social_facility|pharmacy"

func (s *placesService) FindNearby(ctx context.Context, lat, lon float64, radius int) ([]model.Place, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "mindhaven.discover.places",
		Provider:  logger.Ptr("overpass"),
	})

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, ErrValidation
	}
	if radius <= 0 {
		radius = s.cfg.DefaultRadius
	}
	if radius > s.cfg.MaxRadius {
		radius = s.cfg.MaxRadius
	}

	// Coordinates rounded to ~100m so nearby requests share cache entries.
	cacheKey := fmt.Sprintf("places:%.3f:%.3f:%d", lat, lon, radius)
	var places []model.Place
	if s.cache.get(ctx, cacheKey, &places) {
		return places, nil
	}

	query := fmt.Sprintf(`[out:json][timeout:15];node["amenity"~"%s"](around:%d,%f,%f);out body 50;`,
		overpassAmenities, radius, lat, lon)

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.OverpassURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build overpass request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("overpass status %d: %s", resp.StatusCode, logger.Truncate(string(body), 120))
	}

	var payload struct {
		Elements []struct {
			Lat  float64           `json:"lat"`
			Lon  float64           `json:"lon"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}

	places = make([]model.Place, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue // unnamed nodes are not useful to show
		}
		places = append(places, model.Place{
			Name: name,
			Kind: el.Tags["amenity"],
			Lat:  el.Lat,
			Lon:  el.Lon,
		})
	}

	slog.DebugContext(ctx, "overpass lookup completed",
		"results", len(places),
		"duration_ms", time.Since(start).Milliseconds())

	s.cache.set(ctx, cacheKey, places)
	return places, nil
}
