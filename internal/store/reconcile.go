package store

import (
	"context"
	"fmt"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/retry"
	"github.com/travel-offers/offer-search-engine/internal/usecase"
)

var _ usecase.OfferReconciler = (*Reconciler)(nil)

// Reconciler makes a page of transient offers durable: existing rows are
// matched by content hash and their identities copied in place, missing rows
// are created in one transaction per entity class. Flights are reconciled
// strictly before the offers referencing them. A concurrent identical search
// racing the creates loses the unique-index race; the retry loop re-resolves
// by hash so the loser adopts the winner's identities.
type Reconciler struct {
	store    Store
	retryCfg retry.Config
}

// NewReconciler creates a Reconciler using cfg as the collision retry budget.
func NewReconciler(store Store, cfg retry.Config) *Reconciler {
	cfg.RetryIf = domain.IsDuplicateHash
	return &Reconciler{store: store, retryCfg: cfg}
}

// FlightOffers reconciles a page of flight offers and resolves the favourite
// flag for userID. Offers and their flights carry durable identities on
// return, or the whole page fails.
func (r *Reconciler) FlightOffers(ctx context.Context, userID string, offers []*domain.FlightOffer) error {
	if len(offers) == 0 {
		return nil
	}

	// Distinct flights referenced by the page, in first-appearance order so
	// create batches are deterministic.
	flights := make(map[string]*domain.Flight)
	flightKeys := make([]string, 0)
	for _, o := range offers {
		for _, leg := range []*domain.Flight{o.Depart, o.Return} {
			if leg == nil {
				continue
			}
			key := HashKey(leg.ContentHash())
			if _, ok := flights[key]; !ok {
				flights[key] = leg
				flightKeys = append(flightKeys, key)
			}
		}
	}

	err := r.ensureClass(ctx,
		func() []string {
			return transientKeys(flightKeys, func(key string) bool { return flights[key].ID.IsTransient() })
		},
		func(ids map[string]uint) {
			for key, id := range ids {
				if f, ok := flights[key]; ok && f.ID.IsTransient() {
					f.ID = domain.PersistedIdentity(id)
				}
			}
		},
		r.store.FlightIDsByHash,
		func(ctx context.Context, keys []string) (map[string]uint, error) {
			missing := make([]*domain.Flight, 0, len(keys))
			for _, key := range keys {
				missing = append(missing, flights[key])
			}
			return r.store.CreateFlights(ctx, missing)
		},
	)
	if err != nil {
		return fmt.Errorf("reconcile flights: %w", err)
	}

	byKey := make(map[string]*domain.FlightOffer, len(offers))
	offerKeys := make([]string, 0, len(offers))
	for _, o := range offers {
		key := HashKey(o.ContentHash())
		if _, ok := byKey[key]; !ok {
			byKey[key] = o
			offerKeys = append(offerKeys, key)
		}
	}

	err = r.ensureClass(ctx,
		func() []string {
			return transientKeys(offerKeys, func(key string) bool { return byKey[key].ID.IsTransient() })
		},
		func(ids map[string]uint) {
			for key, id := range ids {
				if o, ok := byKey[key]; ok && o.ID.IsTransient() {
					o.ID = domain.PersistedIdentity(id)
				}
			}
		},
		r.store.FlightOfferIDsByHash,
		func(ctx context.Context, keys []string) (map[string]uint, error) {
			missing := make([]*domain.FlightOffer, 0, len(keys))
			for _, key := range keys {
				missing = append(missing, byKey[key])
			}
			return r.store.CreateFlightOffers(ctx, missing)
		},
	)
	if err != nil {
		return fmt.Errorf("reconcile flight offers: %w", err)
	}

	if userID == "" {
		return nil
	}
	flags, err := r.store.FavouriteOfferIDs(ctx, userID, OfferKindFlight, offerIDs(offers, func(o *domain.FlightOffer) domain.Identity { return o.ID }))
	if err != nil {
		return fmt.Errorf("resolve favourites: %w", err)
	}
	for _, o := range offers {
		if id, ok := o.ID.Value(); ok {
			o.IsFavourite = flags[id]
		}
	}
	return nil
}

// StayOffers reconciles a page of stay offers, which have no sub-entities.
func (r *Reconciler) StayOffers(ctx context.Context, userID string, offers []*domain.StayOffer) error {
	if len(offers) == 0 {
		return nil
	}

	byKey := make(map[string]*domain.StayOffer, len(offers))
	keys := make([]string, 0, len(offers))
	for _, o := range offers {
		key := HashKey(o.ContentHash())
		if _, ok := byKey[key]; !ok {
			byKey[key] = o
			keys = append(keys, key)
		}
	}

	err := r.ensureClass(ctx,
		func() []string {
			return transientKeys(keys, func(key string) bool { return byKey[key].ID.IsTransient() })
		},
		func(ids map[string]uint) {
			for key, id := range ids {
				if o, ok := byKey[key]; ok && o.ID.IsTransient() {
					o.ID = domain.PersistedIdentity(id)
				}
			}
		},
		r.store.StayOfferIDsByHash,
		func(ctx context.Context, missing []string) (map[string]uint, error) {
			rows := make([]*domain.StayOffer, 0, len(missing))
			for _, key := range missing {
				rows = append(rows, byKey[key])
			}
			return r.store.CreateStayOffers(ctx, rows)
		},
	)
	if err != nil {
		return fmt.Errorf("reconcile stay offers: %w", err)
	}

	if userID == "" {
		return nil
	}
	flags, err := r.store.FavouriteOfferIDs(ctx, userID, OfferKindStay, offerIDs(offers, func(o *domain.StayOffer) domain.Identity { return o.ID }))
	if err != nil {
		return fmt.Errorf("resolve favourites: %w", err)
	}
	for _, o := range offers {
		if id, ok := o.ID.Value(); ok {
			o.IsFavourite = flags[id]
		}
	}
	return nil
}

// ensureClass resolves durable identities for one entity class: adopt
// existing rows by hash, then create what is still missing. Losing the
// unique-index race to a concurrent writer re-runs the hash lookup before the
// next create attempt, so the same create is never blindly repeated.
func (r *Reconciler) ensureClass(
	ctx context.Context,
	missing func() []string,
	assign func(ids map[string]uint),
	find func(ctx context.Context, hashes []string) (map[string]uint, error),
	create func(ctx context.Context, hashes []string) (map[string]uint, error),
) error {
	resolve := func(ctx context.Context) error {
		keys := missing()
		if len(keys) == 0 {
			return nil
		}
		ids, err := find(ctx, keys)
		if err != nil {
			return err
		}
		assign(ids)
		return nil
	}

	if err := resolve(ctx); err != nil {
		return err
	}

	write := func(ctx context.Context) error {
		keys := missing()
		if len(keys) == 0 {
			return nil
		}
		ids, err := create(ctx, keys)
		if err != nil {
			return err
		}
		assign(ids)
		return nil
	}

	return retry.OnConflict(ctx, r.retryCfg, write, resolve)
}

func transientKeys(keys []string, isTransient func(string) bool) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if isTransient(key) {
			out = append(out, key)
		}
	}
	return out
}

func offerIDs[T any](offers []T, identity func(T) domain.Identity) []uint {
	ids := make([]uint, 0, len(offers))
	for _, o := range offers {
		if id, ok := identity(o).Value(); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
