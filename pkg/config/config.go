package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
		Timezone  string `env:"APP_TIMEZONE" env-default:"Asia/Ho_Chi_Minh"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host    string `env:"POSTGRES_HOST" env-default:"localhost"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Redis struct {
		Addr     string `env:"REDIS_ADDR"`
		Password string `env:"REDIS_PASSWORD"`
		DB       int    `env:"REDIS_DB" env-default:"0"`
	}
	Cache struct {
		TTL  time.Duration `env:"CACHE_TTL" env-default:"10m"`
		Size int           `env:"CACHE_SIZE" env-default:"1024"`
	}
	Kafka struct {
		Brokers string `env:"KAFKA_BROKERS"`
		Topic   string `env:"KAFKA_FOLLOW_TOPIC" env-default:"follow-status-changed"`
		GroupID string `env:"KAFKA_GROUP_ID" env-default:"scenefeed"`
	}
	Feed struct {
		BlockedOrganizers []string      `env:"FEED_BLOCKED_ORGANIZERS" env-separator:","`
		SponsoredCadence  int           `env:"FEED_SPONSORED_CADENCE" env-default:"6"`
		FetchLimit        uint64        `env:"FEED_FETCH_LIMIT" env-default:"500"`
		PageSize          int           `env:"FEED_PAGE_SIZE" env-default:"20"`
		FollowReloadDelay time.Duration `env:"FEED_FOLLOW_RELOAD_DELAY" env-default:"1s"`
		LocationDebounce  time.Duration `env:"FEED_LOCATION_DEBOUNCE" env-default:"300ms"`
		SessionIdleTTL    time.Duration `env:"FEED_SESSION_IDLE_TTL" env-default:"30m"`
		MaxSessions       int           `env:"FEED_MAX_SESSIONS" env-default:"10000"`
	}
	Seeding struct {
		Enabled    bool          `env:"SEEDING_ENABLED" env-default:"false"`
		SkipHours  int           `env:"SEEDING_SKIP_HOURS" env-default:"24"`
		BatchDelay time.Duration `env:"SEEDING_BATCH_DELAY" env-default:"500ms"`
		Schedule   string        `env:"SEEDING_SCHEDULE" env-default:"0 */6 * * *"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"20"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"10s"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"10"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		LoadDotEnvs()

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
		if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
			log.Fatalf("Invalid APP_TIMEZONE %q: %v", cfg.App.Timezone, err)
		}
	})
	return cfg, nil
}

// GetDSN returns the libpq connection string used by database/sql callers.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// GetURL returns the postgres:// URL used by the pgx pool.
func (c *Config) GetURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

// Location is the zone calendar days are measured in. An empty or unknown
// APP_TIMEZONE means UTC.
func (c *Config) Location() *time.Location {
	if c.App.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
