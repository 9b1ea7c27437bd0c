package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel         OTelConfig
	WorkOS       WorkOSConfig
	ArangoDB     ArangoDBConfig
	ModeratorLLM LLMConfig
	AssistantLLM LLMConfig
	Board        BoardConfig
	Redis        RedisConfig
	Places       PlacesConfig
	News         NewsConfig
	Env          string
	Port         string
	FrontendURL  string
}

type WorkOSConfig struct {
	APIKey      string
	ClientID    string
	RedirectURI string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type LLMConfig struct {
	Provider  string // "openai" or "anthropic"
	APIKey    string
	BaseURL   string // Optional: for custom endpoints
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type ArangoDBConfig struct {
	URL      string
	Username string
	Password string
	Database string
}

// BoardConfig carries the two client-visible listing defaults: the full board
// view pages by FeedPageSize, the home-page recent-letters widget by
// RecentPageSize. They are independent knobs, not one shared constant.
type BoardConfig struct {
	FeedPageSize   int
	RecentPageSize int
	MaxPageSize    int
}

type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type PlacesConfig struct {
	OverpassURL   string
	DefaultRadius int // meters
	MaxRadius     int
}

type NewsConfig struct {
	APIKey   string
	BaseURL  string
	PageSize int
}

// Load loads configuration from environment variables.
// In development it first loads a local .env file if one exists.
func Load() (Config, error) {
	if getEnv("MINDHAVEN_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:         getEnv("MINDHAVEN_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "mindhaven"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		WorkOS: WorkOSConfig{
			APIKey:      getEnv("WORKOS_API_KEY", ""),
			ClientID:    getEnv("WORKOS_CLIENT_ID", ""),
			RedirectURI: getEnv("WORKOS_REDIRECT_URI", "http://localhost:8080/auth/callback"),
		},
		ArangoDB: ArangoDBConfig{
			URL:      getEnv("ARANGO_URL", "http://localhost:8529"),
			Username: getEnv("ARANGO_USERNAME", "root"),
			Password: getEnv("ARANGO_PASSWORD", ""),
			Database: getEnv("ARANGO_DATABASE", "mindhaven"),
		},
		ModeratorLLM: LLMConfig{
			Provider:  getEnv("MODERATOR_LLM_PROVIDER", "openai"),
			APIKey:    getEnv("MODERATOR_LLM_API_KEY", ""),
			BaseURL:   getEnv("MODERATOR_LLM_BASE_URL", ""),
			Model:     getEnv("MODERATOR_LLM_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvInt("MODERATOR_LLM_MAX_TOKENS", 16),
			Timeout:   getEnvDuration("MODERATOR_LLM_TIMEOUT", 10*time.Second),
		},
		AssistantLLM: LLMConfig{
			Provider:  getEnv("ASSISTANT_LLM_PROVIDER", "openai"),
			APIKey:    getEnv("ASSISTANT_LLM_API_KEY", ""),
			BaseURL:   getEnv("ASSISTANT_LLM_BASE_URL", ""),
			Model:     getEnv("ASSISTANT_LLM_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvInt("ASSISTANT_LLM_MAX_TOKENS", 1024),
			Timeout:   getEnvDuration("ASSISTANT_LLM_TIMEOUT", 30*time.Second),
		},
		Board: BoardConfig{
			FeedPageSize:   getEnvInt("BOARD_FEED_PAGE_SIZE", 10),
			RecentPageSize: getEnvInt("BOARD_RECENT_PAGE_SIZE", 5),
			MaxPageSize:    getEnvInt("BOARD_MAX_PAGE_SIZE", 50),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			CacheTTL: getEnvDuration("REDIS_CACHE_TTL", 15*time.Minute),
		},
		Places: PlacesConfig{
			OverpassURL:   getEnv("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
			DefaultRadius: getEnvInt("PLACES_DEFAULT_RADIUS", 3000),
			MaxRadius:     getEnvInt("PLACES_MAX_RADIUS", 20000),
		},
		News: NewsConfig{
			APIKey:   getEnv("NEWS_API_KEY", ""),
			BaseURL:  getEnv("NEWS_API_BASE_URL", "https://newsapi.org/v2"),
			PageSize: getEnvInt("NEWS_PAGE_SIZE", 10),
		},
	}

	if cfg.ArangoDB.URL == "" || cfg.ArangoDB.Database == "" {
		return Config{}, fmt.Errorf("ARANGO_URL and ARANGO_DATABASE are required")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c WorkOSConfig) Enabled() bool {
	return c.APIKey != "" && c.ClientID != ""
}

func (c LLMConfig) Enabled() bool {
	return c.APIKey != "" && (c.Provider == "openai" || c.Provider == "anthropic")
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

func (c NewsConfig) Enabled() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
