package config

import (
	"os"
	"path/filepath"
	"time"
)

// Redis keys
const PLACES_GEO_KEY_V1 = "places_geo_v1"
const PLACES_GEO_MEMBER_FORMAT_V1 = "places_geo_place_v1:%s"
const PLACES_SEARCH_KEY_FORMAT_V1 = "places_search_v1:%s"
const PLACES_TRENDING_KEY_FORMAT_V1 = "places_trending_v1:%s_%d"
const GEOCODE_KEY_FORMAT_V1 = "geocode_v1:%s"

// Itinerary slots
const ITINERARY_DAY_START_HOUR = 9
const ITINERARY_SLOT_DURATION = 2 * time.Hour

// Place search limits
const PLACES_DEFAULT_LIMIT = 10
const PLACES_MAX_LIMIT = 50
const PLACES_MAX_RADIUS_METERS = 50000
const TRENDING_DEFAULT_LIMIT = 6

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACES_SEARCH_RESPONSE_RESOURCE = "foursquare_search_response.json"
const PLACES_TRENDING_RESPONSE_RESOURCE = "foursquare_trending_response.json"
const GEOCODE_RESPONSE_RESOURCE = "foursquare_geocode_response.json"
const QA_RESPONSES_RESOURCE = "hf_qa_responses.json"
const SENTIMENT_RESPONSE_RESOURCE = "hf_sentiment_response.json"
const NER_RESPONSE_RESOURCE = "hf_ner_response.json"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func ResourcesDir() string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX)
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(ResourcesDir(), resourceFile)
}

// Config is the runtime configuration, see Load.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Foursquare  FoursquareConfig  `mapstructure:"foursquare"`
	HuggingFace HuggingFaceConfig `mapstructure:"huggingface"`
	Maptiler    MaptilerConfig    `mapstructure:"maptiler"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Refresher   RefresherConfig   `mapstructure:"refresher"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"env"`
}

// IsProd reports whether real collaborators and Redis should be wired.
func (a AppConfig) IsProd() bool {
	return a.Environment == "prod"
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type FoursquareConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type HuggingFaceConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Timeout        time.Duration `mapstructure:"timeout"`
	QAModel        string        `mapstructure:"qa_model"`
	SentimentModel string        `mapstructure:"sentiment_model"`
	NERModel       string        `mapstructure:"ner_model"`
}

type MaptilerConfig struct {
	APIKey   string `mapstructure:"api_key"`
	StyleURL string `mapstructure:"style_url"`
}

type CacheConfig struct {
	SearchTTL   time.Duration `mapstructure:"search_ttl"`
	TrendingTTL time.Duration `mapstructure:"trending_ttl"`
	GeocodeTTL  time.Duration `mapstructure:"geocode_ttl"`
}

type RefresherConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	Regions  []string      `mapstructure:"regions"`
	Limit    int           `mapstructure:"limit"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
