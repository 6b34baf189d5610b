package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"vitae-backend/internal/documents"
	"vitae-backend/internal/generate"
	"vitae-backend/internal/llm"
	"vitae-backend/internal/llm/gemini"
	"vitae-backend/internal/llm/openai"
	"vitae-backend/internal/services/health"
	"vitae-backend/internal/shared/config"
	"vitae-backend/internal/shared/server"
	"vitae-backend/internal/shared/telemetry"
)

// Environment variables holding provider credentials. They are read here and nowhere else.
const (
	openAIKeyEnv = "OPENAI_API_KEY"
	googleKeyEnv = "GOOGLE_API_KEY"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Completer       llm.Completer
	GenerateService *generate.Service
	DocumentHandler *documents.Handler
	GenerateHandler *generate.Handler
	Health          *health.Service
}

// Build wires config, the completion backend, services and the router.
func Build(cfg config.Config) (*App, error) {
	return BuildWithEnv(context.Background(), cfg, os.Getenv)
}

// BuildWithEnv is Build with an injectable environment lookup.
func BuildWithEnv(ctx context.Context, cfg config.Config, getenv func(string) string) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	completer, configured, err := buildCompleter(ctx, cfg, getenv)
	if err != nil {
		return nil, err
	}

	svc := generate.NewService(completer)
	app := &App{
		Config:          cfg,
		Completer:       completer,
		GenerateService: svc,
		DocumentHandler: documents.NewHandler(cfg.MaxUploadBytes),
		GenerateHandler: generate.NewHandler(svc, cfg.MaxUploadBytes),
		Health:          health.NewService(cfg.LLMProvider, cfg.LLMModel, configured),
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Health:          app.Health,
		DocumentHandler: app.DocumentHandler,
		GenerateHandler: app.GenerateHandler,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":                   cfg.Env,
		"provider":              cfg.LLMProvider,
		"model":                 cfg.LLMModel,
		"completion_configured": configured,
	})
	return app, nil
}

// BuildCompleter constructs only the completion backend, for callers that do not serve HTTP.
func BuildCompleter(ctx context.Context, cfg config.Config) (llm.Completer, error) {
	completer, _, err := buildCompleter(ctx, cfg, os.Getenv)
	return completer, err
}

func buildCompleter(ctx context.Context, cfg config.Config, getenv func(string) string) (llm.Completer, bool, error) {
	var (
		completer llm.Completer
		keyEnv    string
		err       error
	)
	switch cfg.LLMProvider {
	case "gemini":
		keyEnv = googleKeyEnv
		if key := strings.TrimSpace(getenv(keyEnv)); key != "" {
			completer, err = gemini.NewClient(ctx, key, cfg.LLMModel, gemini.Options{})
		}
	default:
		keyEnv = openAIKeyEnv
		if key := strings.TrimSpace(getenv(keyEnv)); key != "" {
			completer, err = openai.NewClient(key, cfg.LLMModel)
		}
	}
	if err != nil {
		return nil, false, fmt.Errorf("build %s completer: %w", cfg.LLMProvider, err)
	}
	if completer != nil {
		return completer, true, nil
	}

	if !isDevLike(cfg.Env) {
		return nil, false, errors.New(keyEnv + " is required")
	}
	telemetry.Error("bootstrap.completion_unconfigured", map[string]any{
		"provider": cfg.LLMProvider,
		"missing":  keyEnv,
	})
	return llm.UnconfiguredClient{}, false, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
