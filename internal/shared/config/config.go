package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	LocalStoreDir   string
	GrokAPIKey      string
	GrokAPIURL      string
	OCREnabled      bool
	OCRLanguage     string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		GrokAPIKey:      os.Getenv("GROK_API_KEY"),
		GrokAPIURL:      getEnv("GROK_API_URL", "https://api.grok.ai/v1/analyze"),
		OCREnabled:      parseBool(getEnv("OCR_ENABLED", "true")),
		OCRLanguage:     getEnv("OCR_LANGUAGE", "eng"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
	}
}

// GrokConfigured reports whether the AI scorer can be enabled. Absence of
// either setting disables it without error.
func (c Config) GrokConfigured() bool {
	return strings.TrimSpace(c.GrokAPIKey) != "" && strings.TrimSpace(c.GrokAPIURL) != ""
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
