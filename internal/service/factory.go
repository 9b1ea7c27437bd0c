package service

import (
	"net/http"

	"github.com/redis/go-redis/v9"

	"mindhaven.app/server/common/llm"
	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/store"
)

type ServicesConfig struct {
	Stores       *store.Stores
	Config       config.Config
	ModeratorLLM llm.Client // nil when unconfigured
	AssistantLLM llm.Client // nil when unconfigured
	Redis        *redis.Client
	HTTPClient   *http.Client
}

type Services struct {
	cfg ServicesConfig
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{cfg: cfg}
}

func (s *Services) Moderation() ModerationService {
	return NewModerationService(s.cfg.ModeratorLLM, s.cfg.Config.ModeratorLLM)
}

func (s *Services) Board() BoardService {
	return NewBoardService(s.cfg.Stores.Letters(), s.Moderation(), s.cfg.Config.Board)
}

func (s *Services) Chat() ChatService {
	return NewChatService()
}

func (s *Services) Assistant() AssistantService {
	return NewAssistantService(s.cfg.AssistantLLM, s.Moderation(), s.cfg.Config.AssistantLLM)
}

func (s *Services) Journal() JournalService {
	return NewJournalService(s.cfg.Stores.Journals(), s.cfg.Config.Board)
}

func (s *Services) Places() PlacesService {
	return NewPlacesService(s.cfg.Config.Places, s.cfg.HTTPClient, s.cfg.Redis, s.cfg.Config.Redis.CacheTTL)
}

func (s *Services) News() NewsService {
	return NewNewsService(s.cfg.Config.News, s.cfg.HTTPClient, s.cfg.Redis, s.cfg.Config.Redis.CacheTTL)
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.cfg.Stores.Users(), s.cfg.Stores.Sessions(), s.cfg.Config.WorkOS)
}
