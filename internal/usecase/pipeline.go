package usecase

import (
	"sort"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

// The pipeline stages below run in a fixed order for correctness: sort the
// full candidate set, derive narrowing and top-offer statistics from the
// unfiltered set, then filter, then paginate. Both offer kinds share these
// generic stages; only the factor functions and predicates differ.

// sortCandidates stable-sorts items in place by (primary, secondary). Each key
// has its own direction.
func sortCandidates[T any](items []T, primary, secondary factorFunc[T], primaryDesc, secondaryDesc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := primary(items[i]), primary(items[j])
		if pi != pj {
			if primaryDesc {
				return pi > pj
			}
			return pi < pj
		}
		if secondary == nil {
			return false
		}
		si, sj := secondary(items[i]), secondary(items[j])
		if secondaryDesc {
			return si > sj
		}
		return si < sj
	})
}

// priceBounds returns the extremal prices of the set. It must run before the
// user filter so the bounds reflect the true available range.
func priceBounds[T any](items []T, price func(T) int) (low, high int) {
	if len(items) == 0 {
		return 0, 0
	}
	low, high = price(items[0]), price(items[0])
	for _, item := range items[1:] {
		p := price(item)
		if p < low {
			low = p
		}
		if p > high {
			high = p
		}
	}
	return low, high
}

// filterCandidates applies the predicate, preserving order.
func filterCandidates[T any](items []T, keep func(T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	return result
}

// paginate slices the skip/take window out of items and returns the window
// plus the total count. A skip at or past the end yields an empty page, not
// an error.
func paginate[T any](items []T, page domain.Page) ([]T, int) {
	total := len(items)
	if page.Skip >= total {
		return []T{}, total
	}
	// Compare against the remaining length instead of computing Skip+Take,
	// which can overflow for huge Take values.
	end := total
	if page.Take < total-page.Skip {
		end = page.Skip + page.Take
	}
	return items[page.Skip:end], total
}

// extremal returns the candidate minimizing (or maximizing) the factor.
// It scans the whole set; callers pass the unfiltered candidates.
func extremal[T any](items []T, factor factorFunc[T], wantMax bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	best := items[0]
	bestValue := factor(best)
	for _, item := range items[1:] {
		v := factor(item)
		if (wantMax && v > bestValue) || (!wantMax && v < bestValue) {
			best, bestValue = item, v
		}
	}
	return best, true
}

// trackedTopFactors are the sort factors highlighted for flights, each with
// the direction that makes an offer "top" for it.
var trackedTopFactors = []struct {
	factor  domain.FlightSortFactor
	wantMax bool
}{
	{factor: domain.FlightSortPrice, wantMax: false},
	{factor: domain.FlightSortScore, wantMax: true},
	{factor: domain.FlightSortDuration, wantMax: false},
	{factor: domain.FlightSortRating, wantMax: true},
	{factor: domain.FlightSortTimeToDeparture, wantMax: false},
}

// topFlightOffers computes the per-factor extremal highlights over the
// unfiltered candidate set.
func topFlightOffers(offers []*domain.FlightOffer, factors *flightFactors) []domain.TopFlightOffer {
	top := make([]domain.TopFlightOffer, 0, len(trackedTopFactors))
	for _, tracked := range trackedTopFactors {
		offer, ok := extremal(offers, factors.factor(tracked.factor), tracked.wantMax)
		if !ok {
			continue
		}
		top = append(top, domain.TopFlightOffer{Factor: tracked.factor, Price: offer.TotalPrice})
	}
	return top
}

// distinctAirlines lists the airline companies present in the set, in order of
// first appearance.
func distinctAirlines(offers []*domain.FlightOffer) []domain.AirlineCompany {
	seen := make(map[uint]struct{})
	airlines := make([]domain.AirlineCompany, 0)
	for _, o := range offers {
		for _, leg := range []*domain.Flight{o.Depart, o.Return} {
			if leg == nil {
				continue
			}
			if _, dup := seen[leg.Airline.ID]; dup {
				continue
			}
			seen[leg.Airline.ID] = struct{}{}
			airlines = append(airlines, leg.Airline)
		}
	}
	return airlines
}
