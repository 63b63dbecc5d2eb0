package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	// Clear all config-related env vars
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Server defaults
	assert.Equal(t, 8080, cfg.Server.Port, "default server port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "10s", cfg.Server.WriteTimeout.String(), "default write timeout")

	// Store defaults
	assert.NotEmpty(t, cfg.Database.DSN, "default database DSN")
	assert.True(t, cfg.Database.Seed, "seeding on by default")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr, "default redis address")
	assert.Equal(t, "10m0s", cfg.Redis.CacheTTL.String(), "default cache TTL")

	// Generation defaults
	assert.Equal(t, 2, cfg.Generation.FlexibleDateWindowDays)
	assert.Equal(t, 10, cfg.Generation.MaxRoutePairs)
	assert.Equal(t, 10, cfg.Generation.VariantsPerLeg)
	assert.Equal(t, 20, cfg.Generation.MaxTripPairs)
	assert.Equal(t, 1000, cfg.Generation.MaxCandidates)
	assert.Equal(t, 8, cfg.Generation.TimeOfDayBuckets)
	assert.Equal(t, 2, cfg.Generation.NearbyAirportsLimit)
	assert.Equal(t, 12, cfg.Generation.NearbyStaysLimit)
	assert.Equal(t, 3, cfg.Generation.DefaultStayNights)

	// Pricing and retry defaults
	assert.Equal(t, 5, cfg.Pricing.Granularity)
	assert.Equal(t, 3, cfg.Retry.MaxRetries)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")

	// App defaults
	assert.Equal(t, "development", cfg.App.Env, "default app environment")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	// Set custom values
	setEnvVars(t, map[string]string{
		"SERVER_PORT":          "3000",
		"SERVER_READ_TIMEOUT":  "30s",
		"SERVER_WRITE_TIMEOUT": "30s",
		"DATABASE_DSN":         "host=db user=app dbname=offers",
		"DATABASE_SEED":        "false",
		"REDIS_ADDR":           "cache:6379",
		"REDIS_CACHE_TTL":      "1h",
		"GEN_MAX_CANDIDATES":   "250",
		"PRICING_GRANULARITY":  "10",
		"STORE_RETRY_MAX":      "5",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "console",
		"APP_ENV":              "production",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "30s", cfg.Server.ReadTimeout.String())
	assert.Equal(t, "30s", cfg.Server.WriteTimeout.String())
	assert.Equal(t, "host=db user=app dbname=offers", cfg.Database.DSN)
	assert.False(t, cfg.Database.Seed)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "1h0m0s", cfg.Redis.CacheTTL.String())
	assert.Equal(t, 250, cfg.Generation.MaxCandidates)
	assert.Equal(t, 10, cfg.Pricing.Granularity)
	assert.Equal(t, 5, cfg.Retry.MaxRetries)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "production", cfg.App.Env)
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	// Only override port
	setEnvVars(t, map[string]string{
		"SERVER_PORT": "9000",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port, "overridden port")
	assert.Equal(t, "10s", cfg.Server.ReadTimeout.String(), "default read timeout")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, 1000, cfg.Generation.MaxCandidates, "default candidate cap")
}

// TestLoad_Validation_PortRange tests port validation boundaries.
func TestLoad_Validation_PortRange(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
		errMsg  string
	}{
		{"valid port 1", "1", false, ""},
		{"valid port 80", "80", false, ""},
		{"valid port 8080", "8080", false, ""},
		{"valid port 65535", "65535", false, ""},
		{"invalid port 0", "0", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port negative", "-1", true, "SERVER_PORT must be between 1 and 65535"},
		{"invalid port too high", "65536", true, "SERVER_PORT must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"SERVER_PORT": tt.port})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_PositiveTimeouts tests that timeouts must be positive.
func TestLoad_Validation_PositiveTimeouts(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero read timeout", "SERVER_READ_TIMEOUT", "0s", "SERVER_READ_TIMEOUT must be positive"},
		{"negative read timeout", "SERVER_READ_TIMEOUT", "-1s", "SERVER_READ_TIMEOUT must be positive"},
		{"zero write timeout", "SERVER_WRITE_TIMEOUT", "0s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"negative write timeout", "SERVER_WRITE_TIMEOUT", "-1s", "SERVER_WRITE_TIMEOUT must be positive"},
		{"zero cache TTL", "REDIS_CACHE_TTL", "0s", "REDIS_CACHE_TTL must be positive"},
		{"negative cache TTL", "REDIS_CACHE_TTL", "-1s", "REDIS_CACHE_TTL must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_GenerationBounds tests that every generation cap keeps
// the expansion able to emit candidates.
func TestLoad_Validation_GenerationBounds(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
		errMsg string
	}{
		{"zero per-leg variants", "GEN_VARIANTS_PER_LEG", "0", "GEN_VARIANTS_PER_LEG must be at least 1"},
		{"zero candidate cap", "GEN_MAX_CANDIDATES", "0", "GEN_MAX_CANDIDATES must be at least 1"},
		{"zero route pairs", "GEN_MAX_ROUTE_PAIRS", "0", "GEN_MAX_ROUTE_PAIRS must be at least 1"},
		{"zero trip pairs", "GEN_MAX_TRIP_PAIRS", "0", "GEN_MAX_TRIP_PAIRS must be at least 1"},
		{"zero time-of-day buckets", "GEN_TIME_OF_DAY_BUCKETS", "0", "GEN_TIME_OF_DAY_BUCKETS must be at least 1"},
		{"zero stay nights", "GEN_DEFAULT_STAY_NIGHTS", "0", "GEN_DEFAULT_STAY_NIGHTS must be at least 1"},
		{"negative date window", "GEN_FLEXIBLE_DATE_WINDOW_DAYS", "-1", "GEN_FLEXIBLE_DATE_WINDOW_DAYS must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{tt.envVar: tt.value})

			cfg, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, cfg)
		})
	}
}

// TestLoad_Validation_StoreSettings tests store-related validation.
func TestLoad_Validation_StoreSettings(t *testing.T) {
	t.Run("empty DSN", func(t *testing.T) {
		clearEnvVars(t)
		// A set-but-empty variable bypasses the envDefault tag.
		setEnvVars(t, map[string]string{"DATABASE_DSN": ""})

		cfg, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_DSN must not be empty")
		assert.Nil(t, cfg)
	})

	t.Run("negative retry budget", func(t *testing.T) {
		clearEnvVars(t)
		setEnvVars(t, map[string]string{"STORE_RETRY_MAX": "-1"})

		cfg, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORE_RETRY_MAX must not be negative")
		assert.Nil(t, cfg)
	})

	t.Run("negative granularity", func(t *testing.T) {
		clearEnvVars(t)
		setEnvVars(t, map[string]string{"PRICING_GRANULARITY": "-5"})

		cfg, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PRICING_GRANULARITY must not be negative")
		assert.Nil(t, cfg)
	})
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"valid error", "error", false},
		{"invalid trace", "trace", true},
		{"invalid fatal", "fatal", true},
		// Note: empty string uses default value "info" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid json", "json", false},
		{"valid console", "console", false},
		{"invalid text", "text", true},
		// Note: empty string uses default value "json" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_AppEnv tests app environment validation.
func TestLoad_Validation_AppEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		wantErr bool
	}{
		{"valid development", "development", false},
		{"valid staging", "staging", false},
		{"valid production", "production", false},
		{"invalid local", "local", true},
		// Note: empty string uses default value "development" due to envDefault tag
		{"invalid random", "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "APP_ENV must be one of")
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestMustLoad_Success tests MustLoad with valid config.
func TestMustLoad_Success(t *testing.T) {
	clearEnvVars(t)

	assert.NotPanics(t, func() {
		cfg := MustLoad()
		assert.NotNil(t, cfg)
	})
}

// TestMustLoad_Panic tests MustLoad panics on invalid config.
func TestMustLoad_Panic(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"SERVER_PORT": "0"})

	assert.Panics(t, func() {
		MustLoad()
	})
}

// TestConfig_IsDevelopment tests the IsDevelopment helper method.
func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"staging", false},
		{"production", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
		})
	}
}

// TestConfig_IsProduction tests the IsProduction helper method.
func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		env      string
		expected bool
	}{
		{"development", false},
		{"staging", false},
		{"production", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"APP_ENV": tt.env})

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"SERVER_PORT",
		"SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT",
		"DATABASE_DSN",
		"DATABASE_SEED",
		"REDIS_ADDR",
		"REDIS_CACHE_TTL",
		"GEN_FLEXIBLE_DATE_WINDOW_DAYS",
		"GEN_MAX_ROUTE_PAIRS",
		"GEN_VARIANTS_PER_LEG",
		"GEN_MAX_TRIP_PAIRS",
		"GEN_MAX_CANDIDATES",
		"GEN_TIME_OF_DAY_BUCKETS",
		"GEN_NEARBY_AIRPORTS_LIMIT",
		"GEN_NEARBY_STAYS_LIMIT",
		"GEN_DEFAULT_STAY_NIGHTS",
		"PRICING_GRANULARITY",
		"STORE_RETRY_MAX",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"APP_ENV",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
