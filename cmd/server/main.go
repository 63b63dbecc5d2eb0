// Package main is the entry point for the travel offer search service.
//
// The service generates deterministic synthetic flight and stay offers,
// serves sorted/filtered/paginated search pages over HTTP, and reconciles
// every returned page against a PostgreSQL store with Redis-cached reference
// data.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	offerhttp "github.com/travel-offers/offer-search-engine/internal/adapter/http"
	"github.com/travel-offers/offer-search-engine/internal/adapter/http/middleware"
	"github.com/travel-offers/offer-search-engine/internal/config"
	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/logger"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/retry"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/timeutil"
	"github.com/travel-offers/offer-search-engine/internal/pricing"
	"github.com/travel-offers/offer-search-engine/internal/refdata"
	"github.com/travel-offers/offer-search-engine/internal/store"
	"github.com/travel-offers/offer-search-engine/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Open the store and run migrations
	db, err := openDatabase(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}

	// Build reference data sources, optionally wrapped in the Redis cache
	sources := buildSources(db, cfg, log)

	// Assemble the engine
	pricer := pricing.New(cfg.Pricing.Granularity)
	genCfg := generationConfig(cfg)

	flightGen := usecase.NewFlightGenerator(sources.airports, sources.airlines, sources.airplanes, pricer, genCfg)
	stayGen := usecase.NewStayGenerator(sources.cities, sources.stays, pricer, genCfg)

	st := store.NewGormStore(db)
	retryCfg := retry.ConflictConfig.WithMaxRetries(cfg.Retry.MaxRetries)
	reconciler := store.NewReconciler(st, retryCfg)
	favourites := store.NewFavourites(st, retryCfg)

	search := usecase.NewOfferSearchUseCase(flightGen, stayGen, reconciler, timeutil.NewRealClock())

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	offerhttp.RegisterRoutes(e, offerhttp.NewOfferHandler(search, favourites))

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// openDatabase connects to PostgreSQL, retrying transient connection
// failures, and migrates the offer and reference tables.
func openDatabase(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	var db *gorm.DB

	connect := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Database connection failed, retrying")
		}
		return err
	}
	if err := retry.Do(context.Background(), connect, retry.DefaultConfig); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := store.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate offer tables: %w", err)
	}
	if err := refdata.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate reference tables: %w", err)
	}

	if cfg.Database.Seed {
		if err := refdata.Seed(db); err != nil {
			return nil, fmt.Errorf("seed reference data: %w", err)
		}
	}
	return db, nil
}

// referenceSources bundles the five reference data sources the generators
// consume.
type referenceSources struct {
	cities    domain.CitySource
	airports  domain.AirportSource
	airlines  domain.AirlineSource
	airplanes domain.AirplaneSource
	stays     domain.StaySource
}

// buildSources wires the database-backed reference sources. When a Redis
// address is configured, each source is wrapped in a read-through cache; a
// cache outage degrades to direct database reads.
func buildSources(db *gorm.DB, cfg *config.Config, log *logger.Logger) referenceSources {
	sources := referenceSources{
		cities:    refdata.NewCities(db),
		airports:  refdata.NewAirports(db),
		airlines:  refdata.NewAirlines(db),
		airplanes: refdata.NewAirplanes(db),
		stays:     refdata.NewStays(db),
	}

	if cfg.Redis.Addr == "" {
		log.Info().Msg("Reference data cache disabled")
		return sources
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	cache := refdata.NewRedisCache(client)
	ttl := cfg.Redis.CacheTTL

	log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Reference data cache enabled")

	return referenceSources{
		cities:    refdata.NewCachedCities(sources.cities, cache, ttl, log.Logger),
		airports:  refdata.NewCachedAirports(sources.airports, cache, ttl, log.Logger),
		airlines:  refdata.NewCachedAirlines(sources.airlines, cache, ttl, log.Logger),
		airplanes: refdata.NewCachedAirplanes(sources.airplanes, cache, ttl, log.Logger),
		stays:     refdata.NewCachedStays(sources.stays, cache, ttl, log.Logger),
	}
}

// generationConfig maps the environment-driven generation bounds onto the
// engine's configuration.
func generationConfig(cfg *config.Config) usecase.GenerationConfig {
	return usecase.GenerationConfig{
		FlexibleDateWindowDays: cfg.Generation.FlexibleDateWindowDays,
		MaxRoutePairs:          cfg.Generation.MaxRoutePairs,
		VariantsPerLeg:         cfg.Generation.VariantsPerLeg,
		MaxTripPairs:           cfg.Generation.MaxTripPairs,
		MaxCandidates:          cfg.Generation.MaxCandidates,
		TimeOfDayBuckets:       cfg.Generation.TimeOfDayBuckets,
		NearbyAirportsLimit:    cfg.Generation.NearbyAirportsLimit,
		NearbyStaysLimit:       cfg.Generation.NearbyStaysLimit,
		DefaultStayNights:      cfg.Generation.DefaultStayNights,
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
