package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mindhaven.app/server/common/logger"
	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/model"
)

// NewsService searches mental-health related articles through the news API.
type NewsService interface {
	Search(ctx context.Context, query string, page int) ([]model.Article, error)
}

type newsService struct {
	cfg        config.NewsConfig
	httpClient *http.Client
	cache      *responseCache
}

func NewNewsService(cfg config.NewsConfig, httpClient *http.Client, redisClient *redis.Client, cacheTTL time.Duration) NewsService {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &newsService{
		cfg:        cfg,
		httpClient: httpClient,
		cache:      newResponseCache(redisClient, cacheTTL),
	}
}

func (s *newsService) Search(ctx context.Context, query string, page int) ([]model.Article, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "mindhaven.discover.news",
		Provider:  logger.Ptr("newsapi"),
	})

	if !s.cfg.Enabled() {
		return nil, ErrUnconfigured
	}
	if strings.TrimSpace(query) == "" {
		query = "mental health"
	}
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("news:%s:%d", strings.ToLower(query), page)
	var articles []model.Article
	if s.cache.get(ctx, cacheKey, &articles) {
		return articles, nil
	}

	params := url.Values{
		"q":        {query},
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(s.cfg.PageSize)},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		s.cfg.BaseURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.cfg.APIKey)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news api status %d", resp.StatusCode)
	}

	var payload struct {
		Articles []struct {
			Title       string    `json:"title"`
			Description string    `json:"description"`
			URL         string    `json:"url"`
			PublishedAt time.Time `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode news response: %w", err)
	}

	articles = make([]model.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, model.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}

	slog.DebugContext(ctx, "news search completed",
		"query", query,
		"results", len(articles),
		"duration_ms", time.Since(start).Milliseconds())

	s.cache.set(ctx, cacheKey, articles)
	return articles, nil
}
