package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"mindhaven.app/server/common/id"
	"mindhaven.app/server/common/llm"
	"mindhaven.app/server/common/logger"
	"mindhaven.app/server/common/otel"
	"mindhaven.app/server/core/config"
	"mindhaven.app/server/core/db"
	"mindhaven.app/server/internal/http/router"
	"mindhaven.app/server/internal/service"
	"mindhaven.app/server/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}()

	logger.Setup(cfg)

	if err := id.Init(1); err != nil {
		return err
	}

	database, err := db.New(ctx, cfg.ArangoDB)
	if err != nil {
		return err
	}
	defer database.Close()

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return err
		}
		redisClient = redis.NewClient(opts)
		defer redisClient.Close()
	}

	moderatorLLM := buildLLMClient(ctx, cfg.ModeratorLLM, "moderator")
	assistantLLM := buildLLMClient(ctx, cfg.AssistantLLM, "assistant")

	services := service.NewServices(service.ServicesConfig{
		Stores:       store.NewStores(database.Database()),
		Config:       cfg,
		ModeratorLLM: moderatorLLM,
		AssistantLLM: assistantLLM,
		Redis:        redisClient,
	})

	engine := router.Setup(cfg, services)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "server listening",
			"port", cfg.Port,
			"env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// buildLLMClient returns nil when the provider is unconfigured; services
// treat a nil client as a disabled feature rather than an error.
func buildLLMClient(ctx context.Context, cfg config.LLMConfig, role string) llm.Client {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "llm provider not configured", "role", role)
		return nil
	}
	client, err := llm.NewClient(llm.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to build llm client, feature disabled",
			"role", role,
			"error", err)
		return nil
	}
	return client
}
