// Package usecase contains the business logic of the synthetic offer engine:
// combinatorial variant generation, deterministic selection and pricing, the
// sort/filter/paginate pipeline and the search entry points.
package usecase

import "github.com/travel-offers/offer-search-engine/internal/domain"

// FlightSort is one sort key for flight offers.
type FlightSort struct {
	Factor    domain.FlightSortFactor
	Direction domain.SortDirection
}

// StaySort is the sort key for stay offers.
type StaySort struct {
	Factor    domain.StaySortFactor
	Direction domain.SortDirection
}

// FlightSearchOptions contains the per-call parameters of a flight search.
type FlightSearchOptions struct {
	// UserID resolves the per-user favourite flag during reconciliation.
	// It never influences generation.
	UserID string

	// Primary and Secondary are the two sort keys. Unset fields fall back
	// to the defaults (score descending, then price ascending).
	Primary   FlightSort
	Secondary FlightSort

	// Page is the skip/take window applied after filtering.
	Page domain.Page

	// Filters contains optional predicates applied to the sorted set.
	Filters *domain.FlightFilterOptions

	// WithNarrowing requests the available filter ranges of the unfiltered
	// candidate set.
	WithNarrowing bool

	// WithTopOffers requests the per-sort-factor extremal highlights.
	WithTopOffers bool
}

// StaySearchOptions contains the per-call parameters of a stay search.
type StaySearchOptions struct {
	// UserID resolves the per-user favourite flag during reconciliation.
	UserID string

	// Sort is the single sort key. Unset fields fall back to the default
	// (price ascending).
	Sort StaySort

	Page    domain.Page
	Filters *domain.StayFilterOptions

	WithNarrowing bool
}

// DefaultPageSize is used when the caller leaves Page.Take unset.
const DefaultPageSize = 20

// DefaultFlightSearchOptions returns FlightSearchOptions with the default sort
// keys and page size.
func DefaultFlightSearchOptions() FlightSearchOptions {
	return FlightSearchOptions{
		Primary:   FlightSort{Factor: domain.FlightSortScore, Direction: domain.SortDesc},
		Secondary: FlightSort{Factor: domain.FlightSortPrice, Direction: domain.SortAsc},
		Page:      domain.Page{Skip: 0, Take: DefaultPageSize},
	}
}

// DefaultStaySearchOptions returns StaySearchOptions with the default sort key
// and page size.
func DefaultStaySearchOptions() StaySearchOptions {
	return StaySearchOptions{
		Sort: StaySort{Factor: domain.StaySortPrice, Direction: domain.SortAsc},
		Page: domain.Page{Skip: 0, Take: DefaultPageSize},
	}
}

// normalize fills unset sort fields with the configured defaults.
func (o *FlightSearchOptions) normalize() {
	defaults := DefaultFlightSearchOptions()
	if !o.Primary.Factor.IsValid() {
		o.Primary = defaults.Primary
	}
	if !o.Primary.Direction.IsValid() {
		o.Primary.Direction = defaults.Primary.Direction
	}
	if !o.Secondary.Factor.IsValid() {
		o.Secondary = defaults.Secondary
	}
	if !o.Secondary.Direction.IsValid() {
		o.Secondary.Direction = defaults.Secondary.Direction
	}
	if o.Page.Take == 0 {
		o.Page.Take = DefaultPageSize
	}
}

func (o *StaySearchOptions) normalize() {
	defaults := DefaultStaySearchOptions()
	if !o.Sort.Factor.IsValid() {
		o.Sort = defaults.Sort
	}
	if !o.Sort.Direction.IsValid() {
		o.Sort.Direction = defaults.Sort.Direction
	}
	if o.Page.Take == 0 {
		o.Page.Take = DefaultPageSize
	}
}
