package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/retry"
)

// fakeStore is an in-memory Store with the same conflict semantics as the
// GORM implementation: creates are atomic per call and a hash collision
// fails the whole batch with domain.ErrDuplicateHash.
type fakeStore struct {
	mu     sync.Mutex
	nextID uint

	flights      map[string]uint
	flightOffers map[string]uint
	stayOffers   map[string]uint
	favourites   map[string]FavouriteState

	createFlightCalls      int
	createFlightOfferCalls int
	createStayOfferCalls   int

	// beforeCreateFlights runs at the top of CreateFlights, simulating a
	// concurrent writer.
	beforeCreateFlights func()
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		flights:      make(map[string]uint),
		flightOffers: make(map[string]uint),
		stayOffers:   make(map[string]uint),
		favourites:   make(map[string]FavouriteState),
	}
}

func favKey(userID string, kind OfferKind, offerID uint) string {
	return fmt.Sprintf("%s|%s|%d", userID, kind, offerID)
}

func (s *fakeStore) lookup(table map[string]uint, hashes []string) map[string]uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make(map[string]uint)
	for _, h := range hashes {
		if id, ok := table[h]; ok {
			ids[h] = id
		}
	}
	return ids
}

func (s *fakeStore) insert(table map[string]uint, hashes []string) (map[string]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range hashes {
		if _, exists := table[h]; exists {
			return nil, domain.ErrDuplicateHash
		}
	}
	ids := make(map[string]uint, len(hashes))
	for _, h := range hashes {
		s.nextID++
		table[h] = s.nextID
		ids[h] = s.nextID
	}
	return ids, nil
}

func (s *fakeStore) FlightIDsByHash(_ context.Context, hashes []string) (map[string]uint, error) {
	return s.lookup(s.flights, hashes), nil
}

func (s *fakeStore) CreateFlights(_ context.Context, flights []*domain.Flight) (map[string]uint, error) {
	if s.beforeCreateFlights != nil {
		s.beforeCreateFlights()
	}
	s.createFlightCalls++
	hashes := make([]string, 0, len(flights))
	for _, f := range flights {
		hashes = append(hashes, HashKey(f.ContentHash()))
	}
	return s.insert(s.flights, hashes)
}

func (s *fakeStore) FlightOfferIDsByHash(_ context.Context, hashes []string) (map[string]uint, error) {
	return s.lookup(s.flightOffers, hashes), nil
}

func (s *fakeStore) CreateFlightOffers(_ context.Context, offers []*domain.FlightOffer) (map[string]uint, error) {
	s.createFlightOfferCalls++
	hashes := make([]string, 0, len(offers))
	for _, o := range offers {
		if o.Depart.ID.IsTransient() {
			return nil, errTransientLeg
		}
		if o.Return != nil && o.Return.ID.IsTransient() {
			return nil, errTransientLeg
		}
		hashes = append(hashes, HashKey(o.ContentHash()))
	}
	return s.insert(s.flightOffers, hashes)
}

func (s *fakeStore) StayOfferIDsByHash(_ context.Context, hashes []string) (map[string]uint, error) {
	return s.lookup(s.stayOffers, hashes), nil
}

func (s *fakeStore) CreateStayOffers(_ context.Context, offers []*domain.StayOffer) (map[string]uint, error) {
	s.createStayOfferCalls++
	hashes := make([]string, 0, len(offers))
	for _, o := range offers {
		hashes = append(hashes, HashKey(o.ContentHash()))
	}
	return s.insert(s.stayOffers, hashes)
}

func (s *fakeStore) FavouriteOfferIDs(_ context.Context, userID string, kind OfferKind, offerIDs []uint) (map[uint]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags := make(map[uint]bool)
	for _, id := range offerIDs {
		if state, ok := s.favourites[favKey(userID, kind, id)]; ok {
			flags[id] = state.IsFavourite
		}
	}
	return flags, nil
}

func (s *fakeStore) FavouriteState(_ context.Context, userID string, kind OfferKind, offerID uint) (FavouriteState, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.favourites[favKey(userID, kind, offerID)]
	return state, ok, nil
}

func (s *fakeStore) WriteFavourite(_ context.Context, userID string, kind OfferKind, offerID uint, state FavouriteState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := favKey(userID, kind, offerID)
	current, exists := s.favourites[key]
	if state.Version == 0 {
		if exists {
			return domain.ErrDuplicateHash
		}
		s.favourites[key] = FavouriteState{IsFavourite: state.IsFavourite, Version: 1}
		return nil
	}
	if !exists || current.Version != state.Version {
		return domain.ErrVersionConflict
	}
	s.favourites[key] = FavouriteState{IsFavourite: state.IsFavourite, Version: current.Version + 1}
	return nil
}

var _ Store = (*fakeStore)(nil)

// testFlight builds a transient flight whose content hash is determined by n.
func testFlight(n int) *domain.Flight {
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Hour)
	return &domain.Flight{
		Airline:     domain.AirlineCompany{ID: 1, Name: "Aurora Air", Rating: 4.2},
		Airplane:    domain.Airplane{ID: 1, Name: "A320neo"},
		Origin:      domain.Airport{ID: 1, Code: "JFK"},
		Destination: domain.Airport{ID: 2, Code: "LAX"},
		DepartAt:    depart,
		ArriveAt:    depart.Add(5 * time.Hour),
	}
}

func testFlightOffer(depart, ret *domain.Flight) *domain.FlightOffer {
	return &domain.FlightOffer{
		Depart:     depart,
		Return:     ret,
		Class:      domain.ClassEconomy,
		Passengers: 2,
		TotalPrice: 480,
	}
}

func testStayOffer(n int) *domain.StayOffer {
	checkIn := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return &domain.StayOffer{
		Stay:       domain.Stay{ID: uint(n + 1), Name: "Grand Lake Hotel", Rating: 4.6},
		CheckIn:    checkIn,
		CheckOut:   checkIn.AddDate(0, 0, 3),
		Guests:     2,
		Rooms:      1,
		TotalPrice: 150,
	}
}

func fastRetryConfig() retry.Config {
	return retry.Config{MaxRetries: 2, Multiplier: 1}
}

func TestReconcileFlightOffersAssignsIdentities(t *testing.T) {
	fake := newFakeStore()
	r := NewReconciler(fake, fastRetryConfig())

	shared := testFlight(0)
	offers := []*domain.FlightOffer{
		testFlightOffer(shared, testFlight(1)),
		testFlightOffer(shared, nil),
	}

	require.NoError(t, r.FlightOffers(context.Background(), "", offers))

	for _, o := range offers {
		assert.False(t, o.ID.IsTransient())
		assert.False(t, o.Depart.ID.IsTransient())
		if o.Return != nil {
			assert.False(t, o.Return.ID.IsTransient())
		}
	}

	// The shared leg was reconciled once; both offers see the same identity.
	id0, _ := offers[0].Depart.ID.Value()
	id1, _ := offers[1].Depart.ID.Value()
	assert.Equal(t, id0, id1)
	assert.Len(t, fake.flights, 2)
	assert.Len(t, fake.flightOffers, 2)
}

func TestReconcileFlightOffersIsIdempotent(t *testing.T) {
	fake := newFakeStore()
	r := NewReconciler(fake, fastRetryConfig())

	first := []*domain.FlightOffer{testFlightOffer(testFlight(0), nil)}
	require.NoError(t, r.FlightOffers(context.Background(), "", first))

	// A second identical search builds fresh transient values.
	second := []*domain.FlightOffer{testFlightOffer(testFlight(0), nil)}
	require.NoError(t, r.FlightOffers(context.Background(), "", second))

	assert.Len(t, fake.flights, 1, "no duplicate flight rows")
	assert.Len(t, fake.flightOffers, 1, "no duplicate offer rows")

	firstID, _ := first[0].ID.Value()
	secondID, _ := second[0].ID.Value()
	assert.Equal(t, firstID, secondID, "the second caller observes the first caller's identity")

	// The second run found everything by hash and created nothing.
	assert.Equal(t, 1, fake.createFlightCalls)
	assert.Equal(t, 1, fake.createFlightOfferCalls)
}

func TestReconcileFlightOffersAdoptsConcurrentWinner(t *testing.T) {
	fake := newFakeStore()
	r := NewReconciler(fake, fastRetryConfig())

	offers := []*domain.FlightOffer{testFlightOffer(testFlight(0), nil)}

	// A concurrent identical search wins the insert race between our hash
	// lookup and our create.
	var winnerID uint
	fake.beforeCreateFlights = func() {
		if winnerID != 0 {
			return
		}
		winner := testFlight(0)
		ids, err := fake.insert(fake.flights, []string{HashKey(winner.ContentHash())})
		require.NoError(t, err)
		winnerID = ids[HashKey(winner.ContentHash())]
	}

	require.NoError(t, r.FlightOffers(context.Background(), "", offers))

	gotID, ok := offers[0].Depart.ID.Value()
	require.True(t, ok)
	assert.Equal(t, winnerID, gotID, "loser adopts the winner's identity")
	assert.Len(t, fake.flights, 1)
}

func TestReconcileFlightOffersResolvesFavourites(t *testing.T) {
	fake := newFakeStore()
	r := NewReconciler(fake, fastRetryConfig())

	offers := []*domain.FlightOffer{
		testFlightOffer(testFlight(0), nil),
		testFlightOffer(testFlight(1), nil),
	}
	require.NoError(t, r.FlightOffers(context.Background(), "", offers))

	favID, _ := offers[0].ID.Value()
	fake.favourites[favKey("user-1", OfferKindFlight, favID)] = FavouriteState{IsFavourite: true, Version: 1}

	// Same search again for the user with a favourite.
	again := []*domain.FlightOffer{
		testFlightOffer(testFlight(0), nil),
		testFlightOffer(testFlight(1), nil),
	}
	require.NoError(t, r.FlightOffers(context.Background(), "user-1", again))

	assert.True(t, again[0].IsFavourite)
	assert.False(t, again[1].IsFavourite)
}

func TestReconcileFlightOffersEmptyPage(t *testing.T) {
	fake := newFakeStore()
	r := NewReconciler(fake, fastRetryConfig())

	require.NoError(t, r.FlightOffers(context.Background(), "user-1", nil))
	assert.Zero(t, fake.createFlightCalls)
	assert.Zero(t, fake.createFlightOfferCalls)
}

func TestReconcileStayOffersIsIdempotent(t *testing.T) {
	fake := newFakeStore()
	r := NewReconciler(fake, fastRetryConfig())

	first := []*domain.StayOffer{testStayOffer(0), testStayOffer(1)}
	require.NoError(t, r.StayOffers(context.Background(), "", first))

	second := []*domain.StayOffer{testStayOffer(0), testStayOffer(1)}
	require.NoError(t, r.StayOffers(context.Background(), "", second))

	assert.Len(t, fake.stayOffers, 2)
	assert.Equal(t, 1, fake.createStayOfferCalls)

	for i := range first {
		firstID, _ := first[i].ID.Value()
		secondID, _ := second[i].ID.Value()
		assert.Equal(t, firstID, secondID)
	}
}

func TestReconcileStayOffersResolvesFavourites(t *testing.T) {
	fake := newFakeStore()
	r := NewReconciler(fake, fastRetryConfig())

	offers := []*domain.StayOffer{testStayOffer(0)}
	require.NoError(t, r.StayOffers(context.Background(), "", offers))

	id, _ := offers[0].ID.Value()
	fake.favourites[favKey("user-9", OfferKindStay, id)] = FavouriteState{IsFavourite: true, Version: 1}

	again := []*domain.StayOffer{testStayOffer(0)}
	require.NoError(t, r.StayOffers(context.Background(), "user-9", again))
	assert.True(t, again[0].IsFavourite)
}
