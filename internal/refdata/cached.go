package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

// readThrough serves one reference list from the cache, loading from the
// database and repopulating on a miss. Cache failures degrade to the database
// read; only the load itself can fail the call.
func readThrough[T any](ctx context.Context, cache Cache, log zerolog.Logger, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var zero T

	cached, err := cache.Get(ctx, key)
	if err == nil {
		var value T
		if jsonErr := json.Unmarshal([]byte(cached), &value); jsonErr == nil {
			return value, nil
		}
		log.Warn().Str("key", key).Msg("discarding malformed cache entry")
	} else if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, serving from database")
	}

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}

	if payload, jsonErr := json.Marshal(value); jsonErr == nil {
		if setErr := cache.Set(ctx, key, string(payload), ttl); setErr != nil {
			log.Warn().Err(setErr).Str("key", key).Msg("cache write failed")
		}
	}
	return value, nil
}

// CachedCities wraps a CitySource with a read-through cache.
type CachedCities struct {
	inner domain.CitySource
	cache Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedCities creates the cached city source.
func NewCachedCities(inner domain.CitySource, cache Cache, ttl time.Duration, log zerolog.Logger) *CachedCities {
	return &CachedCities{inner: inner, cache: cache, ttl: ttl, log: log}
}

// ListAll implements domain.CitySource.
func (c *CachedCities) ListAll(ctx context.Context) ([]domain.City, error) {
	return readThrough(ctx, c.cache, c.log, "refdata:cities:all", c.ttl, c.inner.ListAll)
}

// BySlug implements domain.CitySource. Misses are not cached, so an unknown
// slug keeps failing fast against the database.
func (c *CachedCities) BySlug(ctx context.Context, slug string) (domain.City, error) {
	return readThrough(ctx, c.cache, c.log, fmt.Sprintf("refdata:cities:slug:%s", slug), c.ttl,
		func(ctx context.Context) (domain.City, error) { return c.inner.BySlug(ctx, slug) })
}

// CachedAirports wraps an AirportSource with a read-through cache.
type CachedAirports struct {
	inner domain.AirportSource
	cache Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedAirports creates the cached airport source.
func NewCachedAirports(inner domain.AirportSource, cache Cache, ttl time.Duration, log zerolog.Logger) *CachedAirports {
	return &CachedAirports{inner: inner, cache: cache, ttl: ttl, log: log}
}

// ListAll implements domain.AirportSource.
func (c *CachedAirports) ListAll(ctx context.Context) ([]domain.Airport, error) {
	return readThrough(ctx, c.cache, c.log, "refdata:airports:all", c.ttl, c.inner.ListAll)
}

// ListNear implements domain.AirportSource.
func (c *CachedAirports) ListNear(ctx context.Context, citySlug string, limit int) ([]domain.Airport, error) {
	key := fmt.Sprintf("refdata:airports:near:%s:%d", citySlug, limit)
	return readThrough(ctx, c.cache, c.log, key, c.ttl,
		func(ctx context.Context) ([]domain.Airport, error) { return c.inner.ListNear(ctx, citySlug, limit) })
}

// CachedAirlines wraps an AirlineSource with a read-through cache.
type CachedAirlines struct {
	inner domain.AirlineSource
	cache Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedAirlines creates the cached airline source.
func NewCachedAirlines(inner domain.AirlineSource, cache Cache, ttl time.Duration, log zerolog.Logger) *CachedAirlines {
	return &CachedAirlines{inner: inner, cache: cache, ttl: ttl, log: log}
}

// ListAll implements domain.AirlineSource.
func (c *CachedAirlines) ListAll(ctx context.Context) ([]domain.AirlineCompany, error) {
	return readThrough(ctx, c.cache, c.log, "refdata:airlines:all", c.ttl, c.inner.ListAll)
}

// CachedAirplanes wraps an AirplaneSource with a read-through cache.
type CachedAirplanes struct {
	inner domain.AirplaneSource
	cache Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedAirplanes creates the cached airplane source.
func NewCachedAirplanes(inner domain.AirplaneSource, cache Cache, ttl time.Duration, log zerolog.Logger) *CachedAirplanes {
	return &CachedAirplanes{inner: inner, cache: cache, ttl: ttl, log: log}
}

// ListAll implements domain.AirplaneSource.
func (c *CachedAirplanes) ListAll(ctx context.Context) ([]domain.Airplane, error) {
	return readThrough(ctx, c.cache, c.log, "refdata:airplanes:all", c.ttl, c.inner.ListAll)
}

// CachedStays wraps a StaySource with a read-through cache.
type CachedStays struct {
	inner domain.StaySource
	cache Cache
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCachedStays creates the cached stay source.
func NewCachedStays(inner domain.StaySource, cache Cache, ttl time.Duration, log zerolog.Logger) *CachedStays {
	return &CachedStays{inner: inner, cache: cache, ttl: ttl, log: log}
}

// ListNear implements domain.StaySource.
func (c *CachedStays) ListNear(ctx context.Context, citySlug string, limit int) ([]domain.Stay, error) {
	key := fmt.Sprintf("refdata:stays:near:%s:%d", citySlug, limit)
	return readThrough(ctx, c.cache, c.log, key, c.ttl,
		func(ctx context.Context) ([]domain.Stay, error) { return c.inner.ListNear(ctx, citySlug, limit) })
}

var (
	_ domain.CitySource     = (*CachedCities)(nil)
	_ domain.AirportSource  = (*CachedAirports)(nil)
	_ domain.AirlineSource  = (*CachedAirlines)(nil)
	_ domain.AirplaneSource = (*CachedAirplanes)(nil)
	_ domain.StaySource     = (*CachedStays)(nil)
)
