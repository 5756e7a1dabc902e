package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"local"`
	PostgresDSN string `env:"POSTGRES_DSN,required"`
	APIPort     int    `env:"API_PORT" envDefault:"8080"`
	HealthPort  int    `env:"HEALTH_PORT" envDefault:"9090"`

	// AI completion
	LLMAPIKey  string        `env:"LLM_API_KEY"`
	LLMModel   string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMRateRPS int           `env:"LLM_RATE_RPS" envDefault:"1"`
	LLMTimeout time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`

	// Translation service (LibreTranslate-compatible API)
	TranslateBaseURL string        `env:"TRANSLATE_BASE_URL"`
	TranslateAPIKey  string        `env:"TRANSLATE_API_KEY"`
	TranslateTimeout time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"10s"`

	// Government data feeds
	CaseFeedURL         string        `env:"CASE_FEED_URL"`
	SurveillanceFeedURL string        `env:"SURVEILLANCE_FEED_URL"`
	BulletinFeedURL     string        `env:"BULLETIN_FEED_URL"`
	FeedTimeout         time.Duration `env:"FEED_TIMEOUT" envDefault:"15s"`

	// Messaging gateway
	BotToken   string `env:"BOT_TOKEN"`
	ChunkBound int    `env:"CHUNK_BOUND" envDefault:"1600"`

	// Daily broadcast
	BroadcastTime     string        `env:"BROADCAST_TIME" envDefault:"08:00"`
	BroadcastTimezone string        `env:"BROADCAST_TIMEZONE" envDefault:"Asia/Kolkata"`
	BroadcastTimeout  time.Duration `env:"BROADCAST_TIMEOUT" envDefault:"15m"`

	// Database pool
	DBMaxConnections    int32         `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	DBMinConnections    int32         `env:"DB_MIN_CONNECTIONS" envDefault:"1"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
