package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.OllamaModel != "llama3:8b" {
		t.Errorf("expected default model llama3:8b, got %q", cfg.OllamaModel)
	}
	if cfg.Temperature != 0.3 {
		t.Errorf("expected default temperature 0.3, got %v", cfg.Temperature)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected default session TTL 30m, got %v", cfg.SessionTTL)
	}
	if !cfg.AllowAllOrigins() {
		t.Error("expected wildcard origins by default")
	}
}

func TestLoadAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := Load()
	if cfg.AllowAllOrigins() {
		t.Error("explicit origin list must not report wildcard")
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[1] != "https://admin.example.com" {
		t.Errorf("origins must be trimmed, got %q", cfg.AllowedOrigins[1])
	}
}

func TestLoadInvalidTemperatureFallsBack(t *testing.T) {
	t.Setenv("OLLAMA_TEMPERATURE", "hot")

	cfg := Load()
	if cfg.Temperature != 0.3 {
		t.Errorf("expected fallback temperature 0.3, got %v", cfg.Temperature)
	}
}
