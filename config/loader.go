package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]interface{}{
	"app.name":                    "MinutePlanner API",
	"app.version":                 "1.1.0",
	"app.env":                     "dev",
	"server.port":                 8080,
	"server.request_timeout":      "60s",
	"server.shutdown_timeout":     "5s",
	"redis.address":               "redis:6379",
	"redis.password":              "",
	"redis.db":                    0,
	"foursquare.base_url":         "https://api.foursquare.com/v3/places",
	"foursquare.api_key":          "",
	"foursquare.timeout":          "10s",
	"huggingface.base_url":        "https://api-inference.huggingface.co/models",
	"huggingface.api_key":         "",
	"huggingface.timeout":         "30s",
	"huggingface.qa_model":        "deepset/roberta-base-squad2",
	"huggingface.sentiment_model": "cardiffnlp/twitter-roberta-base-sentiment-latest",
	"huggingface.ner_model":       "dbmdz/bert-large-cased-finetuned-conll03-english",
	"maptiler.api_key":            "",
	"maptiler.style_url":          "https://api.maptiler.com/maps/streets/style.json",
	"cache.search_ttl":            "15m",
	"cache.trending_ttl":          "1h",
	"cache.geocode_ttl":           "168h",
	"refresher.enabled":           true,
	"refresher.interval":          "30m",
	"refresher.regions":           []string{"india", "france", "japan"},
	"refresher.limit":             TRENDING_DEFAULT_LIMIT,
	"logging.level":               "info",
	"logging.format":              "console",
}

// Load reads configuration from defaults, an optional config.yaml, a .env file and the
// environment, in increasing order of precedence. FOURSQUARE_API_KEY overrides
// foursquare.api_key and so on.
func Load() (*Config, error) {
	loadEnvFile()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", filepath.Join(BaseDir(), ".env")} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", cfg.Server.Port)
	}
	if cfg.Refresher.Enabled && cfg.Refresher.Interval <= 0 {
		return fmt.Errorf("refresher.interval must be positive")
	}
	if cfg.App.IsProd() {
		if cfg.Foursquare.APIKey == "" {
			return fmt.Errorf("FOURSQUARE_API_KEY is required in prod")
		}
		if cfg.HuggingFace.APIKey == "" {
			return fmt.Errorf("HUGGINGFACE_API_KEY is required in prod")
		}
	}
	return nil
}
