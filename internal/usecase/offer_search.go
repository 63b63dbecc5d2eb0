package usecase

import (
	"context"
	"fmt"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/timeutil"
)

// OfferSearchUseCase defines the search entry points of the offer engine.
type OfferSearchUseCase interface {
	// SearchFlightOffers generates, sorts, filters and paginates flight
	// offers for the filter, then reconciles the returned page against the
	// store. The result is either a complete, fully reconciled page or an
	// error; there is no partial success.
	SearchFlightOffers(ctx context.Context, filter domain.FlightSearchFilter, opts FlightSearchOptions) (*domain.FlightSearchResult, error)

	// SearchStayOffers is the stay counterpart of SearchFlightOffers.
	SearchStayOffers(ctx context.Context, filter domain.StaySearchFilter, opts StaySearchOptions) (*domain.StaySearchResult, error)
}

//go:generate mockgen -source=offer_search.go -destination=mock_offer_search.go -package=usecase

// OfferReconciler makes the transient entities of a returned page durable,
// assigning store identities in place.
type OfferReconciler interface {
	FlightOffers(ctx context.Context, userID string, offers []*domain.FlightOffer) error
	StayOffers(ctx context.Context, userID string, offers []*domain.StayOffer) error
}

// offerSearchUseCase wires the generators, the pipeline and the reconciler.
type offerSearchUseCase struct {
	flights    *FlightGenerator
	stays      *StayGenerator
	reconciler OfferReconciler
	clock      timeutil.Clock
}

// NewOfferSearchUseCase creates the search use case with explicit
// collaborators; nothing is resolved from ambient global state.
func NewOfferSearchUseCase(flights *FlightGenerator, stays *StayGenerator, reconciler OfferReconciler, clock timeutil.Clock) OfferSearchUseCase {
	return &offerSearchUseCase{
		flights:    flights,
		stays:      stays,
		reconciler: reconciler,
		clock:      clock,
	}
}

// SearchFlightOffers implements OfferSearchUseCase.
func (uc *offerSearchUseCase) SearchFlightOffers(ctx context.Context, filter domain.FlightSearchFilter, opts FlightSearchOptions) (*domain.FlightSearchResult, error) {
	filter.SetDefaults()
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	opts.normalize()
	if err := opts.Page.Validate(); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()

	candidates, err := uc.flights.Generate(ctx, filter, now)
	if err != nil {
		return nil, fmt.Errorf("generate flight offers: %w", err)
	}

	factors := newFlightFactors(candidates, now)
	sortCandidates(candidates,
		factors.factor(opts.Primary.Factor),
		factors.factor(opts.Secondary.Factor),
		opts.Primary.Direction == domain.SortDesc,
		opts.Secondary.Direction == domain.SortDesc,
	)

	result := &domain.FlightSearchResult{}

	// Narrowing and top-offer statistics come from the unfiltered set so
	// the UI sees the true available ranges.
	if opts.WithNarrowing {
		low, high := priceBounds(candidates, func(o *domain.FlightOffer) int { return o.TotalPrice })
		result.Narrowing = &domain.FlightNarrowing{
			PriceMin: low,
			PriceMax: high,
			Airlines: distinctAirlines(candidates),
		}
	}
	if opts.WithTopOffers {
		result.TopOffers = topFlightOffers(candidates, factors)
	}

	matching := filterCandidates(candidates, opts.Filters.MatchesOffer)
	page, total := paginate(matching, opts.Page)

	if err := uc.reconciler.FlightOffers(ctx, opts.UserID, page); err != nil {
		return nil, fmt.Errorf("reconcile flight offers: %w", err)
	}

	result.Items = page
	result.Total = total
	return result, nil
}

// SearchStayOffers implements OfferSearchUseCase.
func (uc *offerSearchUseCase) SearchStayOffers(ctx context.Context, filter domain.StaySearchFilter, opts StaySearchOptions) (*domain.StaySearchResult, error) {
	filter.SetDefaults()
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	opts.normalize()
	if err := opts.Page.Validate(); err != nil {
		return nil, err
	}

	now := uc.clock.Now().UTC()

	candidates, err := uc.stays.Generate(ctx, filter, now)
	if err != nil {
		return nil, fmt.Errorf("generate stay offers: %w", err)
	}

	factors := newStayFactors(candidates)
	sortCandidates(candidates, factors.factor(opts.Sort.Factor), nil, opts.Sort.Direction == domain.SortDesc, false)

	result := &domain.StaySearchResult{}
	if opts.WithNarrowing {
		low, high := priceBounds(candidates, func(o *domain.StayOffer) int { return o.TotalPrice })
		result.Narrowing = &domain.StayNarrowing{PriceMin: low, PriceMax: high}
	}

	matching := filterCandidates(candidates, opts.Filters.MatchesOffer)
	page, total := paginate(matching, opts.Page)

	if err := uc.reconciler.StayOffers(ctx, opts.UserID, page); err != nil {
		return nil, fmt.Errorf("reconcile stay offers: %w", err)
	}

	result.Items = page
	result.Total = total
	return result, nil
}

// Ensure offerSearchUseCase implements OfferSearchUseCase at compile time.
var _ OfferSearchUseCase = (*offerSearchUseCase)(nil)
