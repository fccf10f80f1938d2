package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
	Timezone  string `mapstructure:"TIMEZONE"`

	DiscordBotToken  string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordChannelID string `mapstructure:"DISCORD_CHANNEL_ID"`

	ExpirySweepInterval time.Duration `mapstructure:"EXPIRY_SWEEP_INTERVAL"`
	CatalogCacheTTL     time.Duration `mapstructure:"CATALOG_CACHE_TTL"`
	RateLimitPerMinute  int           `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	WorkerConcurrency   int           `mapstructure:"WORKER_CONCURRENCY"`
}

var ErrMissingSetting = errors.New("missing required setting")

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "9090")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("TIMEZONE", "Europe/Paris")
	v.SetDefault("DISCORD_BOT_TOKEN", "")
	v.SetDefault("DISCORD_CHANNEL_ID", "")
	v.SetDefault("EXPIRY_SWEEP_INTERVAL", "1m")
	v.SetDefault("CATALOG_CACHE_TTL", "5m")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("WORKER_CONCURRENCY", 10)
}

// Load reads the settings from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Default().With("component", "config").Debug("no .env file loaded", "err", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL", ErrMissingSetting)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET", ErrMissingSetting)
	}

	if c.ExpirySweepInterval <= 0 {
		return fmt.Errorf("EXPIRY_SWEEP_INTERVAL must be positive, got %v", c.ExpirySweepInterval)
	}

	if c.CatalogCacheTTL <= 0 {
		return fmt.Errorf("CATALOG_CACHE_TTL must be positive, got %v", c.CatalogCacheTTL)
	}

	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}
