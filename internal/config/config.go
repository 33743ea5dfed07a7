package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds everything resolved from the environment at process start.
// Services receive it (or the fields they need) explicitly; there are no
// package-level configuration globals.
type Config struct {
	ListenAddr     string
	DatabasePath   string
	JWTSecret      string
	AllowedOrigins []string

	OllamaBaseURL  string
	OllamaModel    string
	Temperature    float64
	LLMTimeout     time.Duration

	SessionTTL time.Duration

	// ResetTempPassword, when non-empty, pins the forgot-password flow to a
	// fixed temporary password. Leave unset to issue random ones.
	ResetTempPassword string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables directly")
	}

	cfg := Config{
		ListenAddr:        getEnv("LISTEN_ADDR", ":8000"),
		DatabasePath:      getEnv("DATABASE_PATH", "./health_check.db"),
		JWTSecret:         getEnv("JWT_SECRET_KEY", ""),
		AllowedOrigins:    splitOrigins(getEnv("ALLOWED_ORIGINS", "*")),
		OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:       getEnv("OLLAMA_MODEL", "llama3:8b"),
		Temperature:       getEnvFloat("OLLAMA_TEMPERATURE", 0.3),
		LLMTimeout:        getEnvDuration("LLM_TIMEOUT", 120*time.Second),
		SessionTTL:        getEnvDuration("SESSION_TTL", 30*time.Minute),
		ResetTempPassword: os.Getenv("RESET_TEMP_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "default_secret_key"
		logrus.Warn("JWT_SECRET_KEY environment variable is not set, using default key")
	}
	return cfg
}

// AllowAllOrigins reports whether the wildcard origin is configured.
// Credentials must be disabled in that case.
func (c Config) AllowAllOrigins() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return d
}
