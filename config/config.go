package config

import "time"

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Logging  LoggingConfig  `json:"logging"`
	HTTP     HTTPConfig     `json:"http"`
	Feed     FeedConfig     `json:"feed"`
	External ExternalConfig `json:"external"`
	App      AppConfig      `json:"app"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"60s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"60s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout   time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"5s"`
	IdleConnTimeout time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

// FeedConfig tunes the home feed assembly.
type FeedConfig struct {
	// LookbackDays bounds phase-1 candidate recency.
	LookbackDays int `json:"lookback_days" env:"FEED_LOOKBACK_DAYS" default:"60"`
	// MaxPaginationLimit caps list endpoints.
	MaxPaginationLimit int `json:"max_pagination_limit" env:"MAX_PAGINATION_LIMIT" default:"200"`
}

// ExternalConfig points at the collaborating services. Empty URLs disable
// the corresponding call and the code falls back immediately.
type ExternalConfig struct {
	RecommenderBaseURL string        `json:"recommender_base_url" env:"EXTERNAL_API_BASE_URL"`
	SentimentURL       string        `json:"sentiment_url" env:"SENTI_URL"`
	CleanseURL         string        `json:"cleanse_url" env:"CLEANSE_URL"`
	RecoTimeout        time.Duration `json:"reco_timeout" env:"RECO_API_TIMEOUT" default:"5s"`
	RateInterval       time.Duration `json:"rate_interval" env:"EXTERNAL_API_RATE_INTERVAL" default:"200ms"`
}

// AppConfig carries product-wide settings.
type AppConfig struct {
	// Timezone is the single civil time zone every windowed aggregation
	// uses, regardless of server locale.
	Timezone string `json:"timezone" env:"APP_TIMEZONE" default:"Asia/Seoul"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
