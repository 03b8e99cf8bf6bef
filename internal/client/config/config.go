// Package config assembles the client's runtime settings. Sources are
// layered: defaults, then a JSON file (-c/-config), then the environment
// (including a .env file), then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the MindWell CLI.
type Config struct {
	// APIBaseURL is the scheme://host[:port] of the backend service.
	APIBaseURL string

	// GeminiAPIKey authenticates calls to the generative API. It has no
	// default and normally arrives via the environment.
	GeminiAPIKey string

	// GeminiModel is the generative model name.
	GeminiModel string

	// RequestTimeout bounds each backend HTTP request.
	RequestTimeout time.Duration

	// CacheDSN is the path of the local SQLite cache database.
	CacheDSN string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.GeminiModel = "gemini-2.0-flash"
	c.RequestTimeout = 30 * time.Second
	c.CacheDSN = "mindwell.db"
}

// LoadConfig constructs a Config from all sources in precedence order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
