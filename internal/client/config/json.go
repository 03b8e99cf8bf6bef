package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mindwell/mindwell/internal/flagx"
	"github.com/mindwell/mindwell/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	GeminiAPIKey   string         `json:"gemini_api_key"`
	GeminiModel    string         `json:"gemini_model"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	CacheDSN       string         `json:"cache_dsn"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// When no file is named, nothing happens. Only fields present in the file
// override earlier values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.GeminiAPIKey != "" {
		cfg.GeminiAPIKey = jc.GeminiAPIKey
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.CacheDSN != "" {
		cfg.CacheDSN = jc.CacheDSN
	}
}
