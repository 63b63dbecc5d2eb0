package domain

// FlightNarrowing is the true range of filterable values across the full
// unfiltered candidate set, computed before the user filter is applied so the
// UI can show the available bounds.
type FlightNarrowing struct {
	// PriceMin and PriceMax are the extremal total prices of the set.
	PriceMin int `json:"priceMin"`
	PriceMax int `json:"priceMax"`

	// Airlines lists the distinct airline companies present in the set.
	Airlines []AirlineCompany `json:"airlines"`
}

// StayNarrowing is the stay counterpart of FlightNarrowing.
type StayNarrowing struct {
	PriceMin int `json:"priceMin"`
	PriceMax int `json:"priceMax"`
}

// TopFlightOffer is the per-sort-factor extremal highlight computed over the
// full unfiltered candidate set.
type TopFlightOffer struct {
	// Factor is the tracked sort factor this entry is extremal for.
	Factor FlightSortFactor `json:"factor"`

	// Price is the total price of the extremal offer.
	Price int `json:"price"`
}

// FlightSearchResult is the outcome of one flight search call: a fully
// reconciled page plus optional narrowing and top-offer statistics.
type FlightSearchResult struct {
	// Items is the returned page. Every item carries a persisted identity.
	Items []*FlightOffer `json:"items"`

	// Total is the number of candidates matching the filter before
	// pagination.
	Total int `json:"total"`

	// Narrowing is present only when requested.
	Narrowing *FlightNarrowing `json:"narrowing,omitempty"`

	// TopOffers is present only when requested.
	TopOffers []TopFlightOffer `json:"topOffers,omitempty"`
}

// StaySearchResult is the outcome of one stay search call.
type StaySearchResult struct {
	Items []*StayOffer `json:"items"`
	Total int          `json:"total"`

	// Narrowing is present only when requested.
	Narrowing *StayNarrowing `json:"narrowing,omitempty"`
}
