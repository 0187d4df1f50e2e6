package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hanjaplatform/hanja-api/api/types"
	"github.com/hanjaplatform/hanja-api/internal/database"
	"github.com/hanjaplatform/hanja-api/internal/observability/logging"
	"github.com/hanjaplatform/hanja-api/internal/observability/metrics"
	"github.com/hanjaplatform/hanja-api/internal/services/auth"
	"github.com/hanjaplatform/hanja-api/internal/services/cache"
	"github.com/hanjaplatform/hanja-api/internal/services/cleanup"
	"github.com/hanjaplatform/hanja-api/internal/services/hanzi"
	"github.com/hanjaplatform/hanja-api/internal/services/history"
	"github.com/hanjaplatform/hanja-api/internal/services/inference"
	"github.com/hanjaplatform/hanja-api/internal/services/workspace"
	"github.com/hanjaplatform/hanja-api/pkg/config"
)

// buildDependencies opens the history store and wires every service. The
// returned cleanup releases what was opened.
func buildDependencies(cfg *config.Config) (*types.Dependencies, func(), error) {
	m := metrics.New(logging.ServiceName)

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	dict, err := hanzi.LoadFile(cfg.Hanzi.DictionaryPath)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	slog.Info("glossary loaded", "characters", dict.Len(), "path", cfg.Hanzi.DictionaryPath)

	memCache := cache.NewMemoryCache(cfg.Cache.MaxSizeMB)

	exec := inference.NewExecutor(inference.BreakerSettings{
		MaxRequests:      cfg.Breaker.MaxRequests,
		Interval:         cfg.Breaker.Interval,
		Timeout:          cfg.Breaker.Timeout,
		FailureThreshold: cfg.Breaker.FailureThreshold,
	}, m)

	client := inference.NewClient(inference.Config{
		BaseURL: cfg.Inference.URL,
		APIKey:  cfg.Inference.APIKey,
		Timeout: cfg.Inference.Timeout,
	}, exec)
	tokenizer := inference.NewCachedTokenizer(client, memCache, cfg.Cache.TokenizeTTL)

	translator := inference.NewTranslator(inference.TranslatorConfig{
		BaseURL:          cfg.Translation.URL,
		APIKey:           cfg.Translation.APIKey,
		Model:            cfg.Translation.Model,
		SystemPrompt:     cfg.Translation.SystemPrompt,
		Temperature:      cfg.Translation.Temperature,
		Seed:             cfg.Translation.Seed,
		FrequencyPenalty: cfg.Translation.FrequencyPenalty,
		Timeout:          cfg.Translation.Timeout,
	}, exec)

	historyRepo := history.NewRepository(db.DB)
	historyService := history.NewService(
		historyRepo,
		history.WithObserver(m),
		history.WithLogger(slog.Default()),
	)

	sessions, err := newSessions(cfg.Auth)
	if err != nil {
		memCache.Stop()
		_ = db.Close()
		return nil, nil, err
	}

	deps := &types.Dependencies{
		DB:         db,
		Config:     cfg,
		Sessions:   sessions,
		Inference:  client,
		Tokenizer:  tokenizer,
		Translator: translator,
		History:    historyService,
		Hanzi:      hanzi.NewService(dict, memCache, cfg.Cache.HanziTTL),
		Metrics:    m,
		Breakers:   exec,
		Retention:  cleanup.NewService(historyRepo, cfg.History.InputRetention, cfg.History.CleanupInterval, slog.Default()),
		Workspace: workspace.NewService(workspace.Deps{
			Tokenizer:  tokenizer,
			Recognizer: client,
			Punctuator: client,
			Translator: translator,
			History:    historyService,
		},
			workspace.WithMaxTokens(cfg.Workspace.MaxTokens),
			workspace.WithSpanObserver(m),
			workspace.WithLogger(slog.Default()),
		),
	}

	release := func() {
		deps.Retention.Stop()
		memCache.Stop()
		if err := db.Close(); err != nil {
			slog.Warn("closing database", "error", err)
		}
	}
	return deps, release, nil
}

// openPath opens the history store at path with default pool settings.
func openPath(path string) (*database.DB, error) {
	db, err := database.Initialize(path, false)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return db, nil
}

func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.Open(cfg.Database.Path, database.Options{
		Verbose:         cfg.Database.Verbose,
		MaxOpenConns:    cfg.Database.MaxConnections,
		MaxIdleConns:    cfg.Database.MaxIdleConnections,
		ConnMaxLifetime: cfg.Database.ConnectionMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.Database.Path, err)
	}
	return db, nil
}

// newSessions returns nil when no secret is configured; every request is
// then anonymous.
func newSessions(cfg config.AuthConfig) (*auth.Service, error) {
	sessions, err := auth.NewService(cfg.JWTSecret, cfg.AdminRole)
	if errors.Is(err, auth.ErrNoSecret) {
		slog.Warn("no session secret configured, history routes will reject every request", "key", "auth.jwt_secret")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sessions.SetDevAuth(cfg.DevAuthEnabled, cfg.DevAuthToken, cfg.DevUserID)
	if cfg.DevAuthEnabled {
		slog.Warn("development authentication enabled", "user", cfg.DevUserID)
	}
	return sessions, nil
}
