package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first; real environment variables take precedence over it.
const (
	EnvAPIBaseURL   = "MINDWELL_API_URL"
	EnvGeminiAPIKey = "MINDWELL_GEMINI_API_KEY"
	EnvGeminiModel  = "MINDWELL_GEMINI_MODEL"
	EnvCacheDSN     = "MINDWELL_CACHE_DSN"
)

// parseEnv overlays cfg with values from the environment. A missing .env
// file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv(EnvGeminiModel); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv(EnvCacheDSN); v != "" {
		cfg.CacheDSN = v
	}
}
