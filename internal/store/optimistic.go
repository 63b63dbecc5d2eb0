package store

import (
	"context"
	"fmt"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/retry"
)

// Favourites toggles per-user favourite flags with optimistic concurrency.
// Every toggle is a version-checked write: losing a race re-reads the latest
// row and retries within the configured budget.
type Favourites struct {
	store    Store
	retryCfg retry.Config
}

// NewFavourites creates the favourites service using cfg as the conflict
// retry budget.
func NewFavourites(store Store, cfg retry.Config) *Favourites {
	cfg.RetryIf = func(err error) bool {
		return domain.IsVersionConflict(err) || domain.IsDuplicateHash(err)
	}
	return &Favourites{store: store, retryCfg: cfg}
}

// Toggle flips the favourite flag of one offer for one user and returns the
// new flag value. A missing row counts as "not favourite", so the first
// toggle always marks the offer.
func (f *Favourites) Toggle(ctx context.Context, userID string, kind OfferKind, offerID uint) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("%w: userId is required", domain.ErrInvalidRequest)
	}
	if !kind.IsValid() {
		return false, fmt.Errorf("%w: offer kind must be one of: flight, stay; got %q", domain.ErrInvalidRequest, kind)
	}

	state, _, err := f.store.FavouriteState(ctx, userID, kind, offerID)
	if err != nil {
		return false, err
	}

	var result bool
	write := func(ctx context.Context) error {
		result = !state.IsFavourite
		return f.store.WriteFavourite(ctx, userID, kind, offerID, FavouriteState{
			IsFavourite: result,
			Version:     state.Version,
		})
	}
	reload := func(ctx context.Context) error {
		latest, _, err := f.store.FavouriteState(ctx, userID, kind, offerID)
		if err != nil {
			return err
		}
		state = latest
		return nil
	}

	if err := retry.OnConflict(ctx, f.retryCfg, write, reload); err != nil {
		return false, fmt.Errorf("toggle favourite: %w", err)
	}
	return result, nil
}
