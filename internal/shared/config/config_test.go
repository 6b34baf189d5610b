package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "CORS_ALLOW_ORIGINS", "LLM_PROVIDER", "LLM_MODEL", "MAX_UPLOAD_BYTES", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
	t.Chdir(t.TempDir())

	cfg := Load()
	if cfg.Port != "8080" || cfg.Env != "dev" {
		t.Fatalf("unexpected port/env %q/%q", cfg.Port, cfg.Env)
	}
	if cfg.LLMProvider != "openai" || cfg.LLMModel != "gpt-4" {
		t.Fatalf("unexpected provider/model %q/%q", cfg.LLMProvider, cfg.LLMModel)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("unexpected max upload %d", cfg.MaxUploadBytes)
	}
	if cfg.RateLimitRPS != 1 || cfg.RateLimitBurst != 5 {
		t.Fatalf("unexpected rate limit %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if len(cfg.CORSAllowOrigin) != 1 || cfg.CORSAllowOrigin[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadGeminiDefaultsModel(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("LLM_MODEL", "")
	t.Chdir(t.TempDir())

	cfg := Load()
	if cfg.LLMProvider != "gemini" || cfg.LLMModel != "gemini-2.5-flash" {
		t.Fatalf("unexpected provider/model %q/%q", cfg.LLMProvider, cfg.LLMModel)
	}
}

func TestLoadReadsDotEnvWithoutOverridingEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9090\nCORS_ALLOW_ORIGINS=\"https://a.example, https://b.example\"\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("PORT", "7070")
	t.Setenv("CORS_ALLOW_ORIGINS", "")
	// godotenv only fills variables that are absent, not ones set to "".
	_ = os.Unsetenv("CORS_ALLOW_ORIGINS")

	cfg := Load()
	if cfg.Port != "7070" {
		t.Fatalf("expected real env to win, got %q", cfg.Port)
	}
	if len(cfg.CORSAllowOrigin) != 2 || cfg.CORSAllowOrigin[1] != "https://b.example" {
		t.Fatalf("expected origins from .env, got %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "lots")
	t.Setenv("RATE_LIMIT_RPS", "-3")
	t.Chdir(t.TempDir())

	cfg := Load()
	if cfg.MaxUploadBytes != 10<<20 || cfg.RateLimitRPS != 1 {
		t.Fatalf("expected defaults for invalid numbers, got %d/%v", cfg.MaxUploadBytes, cfg.RateLimitRPS)
	}
}
