// Package integration provides helpers and integration tests for the offer
// search service. Integration tests exercise the full stack below the
// network: HTTP handlers, the search use case, the generators and the
// reconciliation layer against an in-memory store.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/travel-offers/offer-search-engine/internal/adapter/http"
	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/retry"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/timeutil"
	"github.com/travel-offers/offer-search-engine/internal/pricing"
	"github.com/travel-offers/offer-search-engine/internal/store"
	"github.com/travel-offers/offer-search-engine/internal/usecase"
)

// fixedNow anchors the deterministic clock so generated departure dates stay
// in the future relative to "now".
var fixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

// Reference dataset shared by all integration tests.
var (
	jfkAirport = domain.Airport{ID: 1, Code: "JFK", Name: "John F. Kennedy International", CitySlug: "new-york", CityName: "New York", Lat: 40.64, Lon: -73.78}
	laxAirport = domain.Airport{ID: 2, Code: "LAX", Name: "Los Angeles International", CitySlug: "los-angeles", CityName: "Los Angeles", Lat: 33.94, Lon: -118.41}

	refAirlines = []domain.AirlineCompany{
		{ID: 1, Name: "Aurora Air", Rating: 4.2},
		{ID: 2, Name: "Pacific Wings", Rating: 3.8},
	}

	refAirplanes = []domain.Airplane{
		{ID: 1, Name: "A320neo"},
		{ID: 2, Name: "B787 Dreamliner"},
	}

	parisCity = domain.City{ID: 1, Slug: "paris", Name: "Paris", Lat: 48.85, Lon: 2.35}

	parisStays = []domain.Stay{
		{ID: 1, Slug: "grand-lake-hotel", Name: "Grand Lake Hotel", CitySlug: "paris", CityName: "Paris", Lat: 48.86, Lon: 2.34, Rating: 4.6},
		{ID: 2, Slug: "riverside-inn", Name: "Riverside Inn", CitySlug: "paris", CityName: "Paris", Lat: 48.84, Lon: 2.36, Rating: 3.9},
	}
)

// Static reference sources backing the generators.
type stubAirportSource struct{}

func (stubAirportSource) ListAll(context.Context) ([]domain.Airport, error) {
	return []domain.Airport{jfkAirport, laxAirport}, nil
}

func (stubAirportSource) ListNear(_ context.Context, citySlug string, _ int) ([]domain.Airport, error) {
	switch citySlug {
	case "new-york":
		return []domain.Airport{jfkAirport}, nil
	case "los-angeles":
		return []domain.Airport{laxAirport}, nil
	default:
		return nil, nil
	}
}

type stubAirlineSource struct{}

func (stubAirlineSource) ListAll(context.Context) ([]domain.AirlineCompany, error) {
	return refAirlines, nil
}

type stubAirplaneSource struct{}

func (stubAirplaneSource) ListAll(context.Context) ([]domain.Airplane, error) {
	return refAirplanes, nil
}

type stubCitySource struct{}

func (stubCitySource) ListAll(context.Context) ([]domain.City, error) {
	return []domain.City{parisCity}, nil
}

func (stubCitySource) BySlug(_ context.Context, slug string) (domain.City, error) {
	if slug == "paris" {
		return parisCity, nil
	}
	return domain.City{}, domain.NewMissingDataError("cities")
}

type stubStaySource struct{}

func (stubStaySource) ListNear(_ context.Context, citySlug string, limit int) ([]domain.Stay, error) {
	if citySlug != "paris" {
		return nil, nil
	}
	if limit > len(parisStays) {
		limit = len(parisStays)
	}
	return parisStays[:limit], nil
}

// memStore is a concurrency-safe in-memory implementation of store.Store
// with the same uniqueness and versioning semantics as the SQL store.
type memStore struct {
	mu          sync.Mutex
	nextID      uint
	flights     map[string]uint
	flightOffer map[string]uint
	stayOffer   map[string]uint
	favourites  map[string]store.FavouriteState
}

func newMemStore() *memStore {
	return &memStore{
		flights:     make(map[string]uint),
		flightOffer: make(map[string]uint),
		stayOffer:   make(map[string]uint),
		favourites:  make(map[string]store.FavouriteState),
	}
}

func favKey(userID string, kind store.OfferKind, offerID uint) string {
	return fmt.Sprintf("%s|%s|%d", userID, kind, offerID)
}

func (m *memStore) lookup(table map[string]uint, hashes []string) map[string]uint {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := make(map[string]uint)
	for _, h := range hashes {
		if id, ok := table[h]; ok {
			found[h] = id
		}
	}
	return found
}

func (m *memStore) insert(table map[string]uint, hashes []string) (map[string]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, h := range hashes {
		if _, ok := table[h]; ok {
			return nil, domain.ErrDuplicateHash
		}
	}
	created := make(map[string]uint, len(hashes))
	for _, h := range hashes {
		m.nextID++
		table[h] = m.nextID
		created[h] = m.nextID
	}
	return created, nil
}

func (m *memStore) FlightIDsByHash(_ context.Context, hashes []string) (map[string]uint, error) {
	return m.lookup(m.flights, hashes), nil
}

func (m *memStore) CreateFlights(_ context.Context, flights []*domain.Flight) (map[string]uint, error) {
	hashes := make([]string, len(flights))
	for i, f := range flights {
		hashes[i] = store.HashKey(f.ContentHash())
	}
	return m.insert(m.flights, hashes)
}

func (m *memStore) FlightOfferIDsByHash(_ context.Context, hashes []string) (map[string]uint, error) {
	return m.lookup(m.flightOffer, hashes), nil
}

func (m *memStore) CreateFlightOffers(_ context.Context, offers []*domain.FlightOffer) (map[string]uint, error) {
	hashes := make([]string, len(offers))
	for i, o := range offers {
		hashes[i] = store.HashKey(o.ContentHash())
	}
	return m.insert(m.flightOffer, hashes)
}

func (m *memStore) StayOfferIDsByHash(_ context.Context, hashes []string) (map[string]uint, error) {
	return m.lookup(m.stayOffer, hashes), nil
}

func (m *memStore) CreateStayOffers(_ context.Context, offers []*domain.StayOffer) (map[string]uint, error) {
	hashes := make([]string, len(offers))
	for i, o := range offers {
		hashes[i] = store.HashKey(o.ContentHash())
	}
	return m.insert(m.stayOffer, hashes)
}

func (m *memStore) FavouriteOfferIDs(_ context.Context, userID string, kind store.OfferKind, offerIDs []uint) (map[uint]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	flags := make(map[uint]bool)
	for _, id := range offerIDs {
		if state, ok := m.favourites[favKey(userID, kind, id)]; ok {
			flags[id] = state.IsFavourite
		}
	}
	return flags, nil
}

func (m *memStore) FavouriteState(_ context.Context, userID string, kind store.OfferKind, offerID uint) (store.FavouriteState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	state, ok := m.favourites[favKey(userID, kind, offerID)]
	return state, ok, nil
}

func (m *memStore) WriteFavourite(_ context.Context, userID string, kind store.OfferKind, offerID uint, state store.FavouriteState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := favKey(userID, kind, offerID)
	current, exists := m.favourites[key]

	if state.Version == 0 {
		if exists {
			return domain.ErrDuplicateHash
		}
		m.favourites[key] = store.FavouriteState{IsFavourite: state.IsFavourite, Version: 1}
		return nil
	}
	if !exists || current.Version != state.Version {
		return domain.ErrVersionConflict
	}
	m.favourites[key] = store.FavouriteState{IsFavourite: state.IsFavourite, Version: state.Version + 1}
	return nil
}

var _ store.Store = (*memStore)(nil)

// TestServer wraps an Echo instance wired with the full engine and provides
// helper methods for integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Store *memStore
}

// NewTestServer assembles the engine over static reference data and an
// in-memory store.
func NewTestServer() *TestServer {
	pricer := pricing.New(5)
	genCfg := usecase.DefaultGenerationConfig()

	flightGen := usecase.NewFlightGenerator(stubAirportSource{}, stubAirlineSource{}, stubAirplaneSource{}, pricer, genCfg)
	stayGen := usecase.NewStayGenerator(stubCitySource{}, stubStaySource{}, pricer, genCfg)

	st := newMemStore()
	retryCfg := retry.Config{MaxRetries: 5, Multiplier: 1}
	reconciler := store.NewReconciler(st, retryCfg)
	favourites := store.NewFavourites(st, retryCfg)

	search := usecase.NewOfferSearchUseCase(flightGen, stayGen, reconciler, timeutil.NewMockClock(fixedNow))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	httpAdapter.RegisterRoutes(e, httpAdapter.NewOfferHandler(search, favourites))

	return &TestServer{Echo: e, Store: st}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   any
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		encoded, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(encoded)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// DecodeJSON unmarshals the response body into out.
func (r Response) DecodeJSON(out any) error {
	return json.Unmarshal(r.Body, out)
}
