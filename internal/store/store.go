// Package store persists offers, flights and per-user favourites in a
// relational database and reconciles transient search results against the
// durable rows.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

// OfferKind discriminates the two offer tables wherever both are addressed by
// one key, such as favourites.
type OfferKind string

const (
	OfferKindFlight OfferKind = "flight"
	OfferKindStay   OfferKind = "stay"
)

// IsValid reports whether k names a known offer kind.
func (k OfferKind) IsValid() bool {
	return k == OfferKindFlight || k == OfferKindStay
}

// FavouriteState is the stored favourite flag plus its optimistic version.
// A zero Version means the row does not exist yet.
type FavouriteState struct {
	IsFavourite bool
	Version     int
}

// errTransientLeg guards the reconciliation ordering invariant: an offer row
// can only be written after its flights carry durable identities.
var errTransientLeg = errors.New("store: offer references a flight without a durable identity")

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

// Store is the transactional persistence contract of the reconciliation
// layer. Lookup methods return hash-keyed identity maps; create methods write
// all rows of one entity class in a single transaction and return the
// assigned identities, or fail atomically.
type Store interface {
	FlightIDsByHash(ctx context.Context, hashes []string) (map[string]uint, error)
	CreateFlights(ctx context.Context, flights []*domain.Flight) (map[string]uint, error)

	FlightOfferIDsByHash(ctx context.Context, hashes []string) (map[string]uint, error)
	CreateFlightOffers(ctx context.Context, offers []*domain.FlightOffer) (map[string]uint, error)

	StayOfferIDsByHash(ctx context.Context, hashes []string) (map[string]uint, error)
	CreateStayOffers(ctx context.Context, offers []*domain.StayOffer) (map[string]uint, error)

	// FavouriteOfferIDs returns the favourite flag per offer id for one user.
	// Offers without a favourite row are absent from the map.
	FavouriteOfferIDs(ctx context.Context, userID string, kind OfferKind, offerIDs []uint) (map[uint]bool, error)

	// FavouriteState reads the current favourite row of one offer. The bool
	// result reports whether the row exists.
	FavouriteState(ctx context.Context, userID string, kind OfferKind, offerID uint) (FavouriteState, bool, error)

	// WriteFavourite persists the flag with an optimistic version check:
	// state.Version 0 inserts a fresh row, any other value updates the row
	// only if it still carries that version. A lost race surfaces as
	// domain.ErrVersionConflict or domain.ErrDuplicateHash.
	WriteFavourite(ctx context.Context, userID string, kind OfferKind, offerID uint, state FavouriteState) error
}

// HashKey renders a content hash the way the store indexes it: fixed-width
// lowercase hex.
func HashKey(hash uint32) string {
	return fmt.Sprintf("%08x", hash)
}
