// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Generation GenerationConfig
	Pricing    PricingConfig
	Retry      RetryConfig
	Logging    LoggingConfig
	App        AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// DatabaseConfig holds the relational store settings.
type DatabaseConfig struct {
	DSN string `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=offers port=5432 sslmode=disable"`

	// Seed populates empty reference tables with the built-in dataset at
	// startup.
	Seed bool `env:"DATABASE_SEED" envDefault:"true"`
}

// RedisConfig holds the reference-data cache settings. An empty Addr disables
// the cache and reads go straight to the database.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"10m"`
}

// GenerationConfig bounds the candidate expansion of one search.
type GenerationConfig struct {
	FlexibleDateWindowDays int `env:"GEN_FLEXIBLE_DATE_WINDOW_DAYS" envDefault:"2"`
	MaxRoutePairs          int `env:"GEN_MAX_ROUTE_PAIRS" envDefault:"10"`
	VariantsPerLeg         int `env:"GEN_VARIANTS_PER_LEG" envDefault:"10"`
	MaxTripPairs           int `env:"GEN_MAX_TRIP_PAIRS" envDefault:"20"`
	MaxCandidates          int `env:"GEN_MAX_CANDIDATES" envDefault:"1000"`
	TimeOfDayBuckets       int `env:"GEN_TIME_OF_DAY_BUCKETS" envDefault:"8"`
	NearbyAirportsLimit    int `env:"GEN_NEARBY_AIRPORTS_LIMIT" envDefault:"2"`
	NearbyStaysLimit       int `env:"GEN_NEARBY_STAYS_LIMIT" envDefault:"12"`
	DefaultStayNights      int `env:"GEN_DEFAULT_STAY_NIGHTS" envDefault:"3"`
}

// PricingConfig holds the deterministic pricing settings.
type PricingConfig struct {
	// Granularity rounds every price to a multiple of this value; 0 disables
	// rounding.
	Granularity int `env:"PRICING_GRANULARITY" envDefault:"5"`
}

// RetryConfig bounds the optimistic-concurrency retry loop of store writes.
type RetryConfig struct {
	MaxRetries int `env:"STORE_RETRY_MAX" envDefault:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Database.DSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if cfg.Redis.CacheTTL <= 0 {
		return fmt.Errorf("REDIS_CACHE_TTL must be positive")
	}

	// Validate the generation bounds; every cap must leave the generator able
	// to emit at least one candidate.
	gen := cfg.Generation
	if gen.FlexibleDateWindowDays < 0 {
		return fmt.Errorf("GEN_FLEXIBLE_DATE_WINDOW_DAYS must not be negative")
	}
	for name, value := range map[string]int{
		"GEN_MAX_ROUTE_PAIRS":       gen.MaxRoutePairs,
		"GEN_VARIANTS_PER_LEG":      gen.VariantsPerLeg,
		"GEN_MAX_TRIP_PAIRS":        gen.MaxTripPairs,
		"GEN_MAX_CANDIDATES":        gen.MaxCandidates,
		"GEN_TIME_OF_DAY_BUCKETS":   gen.TimeOfDayBuckets,
		"GEN_NEARBY_AIRPORTS_LIMIT": gen.NearbyAirportsLimit,
		"GEN_NEARBY_STAYS_LIMIT":    gen.NearbyStaysLimit,
		"GEN_DEFAULT_STAY_NIGHTS":   gen.DefaultStayNights,
	} {
		if value < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", name, value)
		}
	}

	if cfg.Pricing.Granularity < 0 {
		return fmt.Errorf("PRICING_GRANULARITY must not be negative")
	}
	if cfg.Retry.MaxRetries < 0 {
		return fmt.Errorf("STORE_RETRY_MAX must not be negative")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
