package usecase

import (
	"time"
)

// pairingStride is the fixed prime used for index pairing when expanding
// under-specified routes and when combining depart/return leg lists. A prime
// stride walks the candidate list in a deterministic, well-spread order, so
// repeated identical searches enumerate the same pairs.
const pairingStride = 7919

// GenerationConfig bounds the combinatorial expansion of one search.
type GenerationConfig struct {
	// FlexibleDateWindowDays is the ±N window applied around the anchor date
	// when flexible dates are requested or no explicit date is given.
	FlexibleDateWindowDays int

	// MaxRoutePairs caps the number of (origin, destination) pairs
	// enumerated when the filter under-specifies the route.
	MaxRoutePairs int

	// VariantsPerLeg is the number of flight-time variants generated per
	// (date, route) pair and leg.
	VariantsPerLeg int

	// MaxTripPairs caps the number of depart/return leg combinations per
	// (date pair, route).
	MaxTripPairs int

	// MaxCandidates is the hard cap on generated candidates per search;
	// generation stops early once it is reached.
	MaxCandidates int

	// TimeOfDayBuckets is the number of fixed-width departure-time buckets
	// across 24 hours.
	TimeOfDayBuckets int

	// NearbyAirportsLimit bounds airports resolved per specified city.
	NearbyAirportsLimit int

	// NearbyStaysLimit bounds stays resolved per city.
	NearbyStaysLimit int

	// DefaultStayNights is the stay length assumed when the filter gives a
	// check-in date but no check-out date.
	DefaultStayNights int
}

// DefaultGenerationConfig returns the default generation bounds.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		FlexibleDateWindowDays: 2,
		MaxRoutePairs:          10,
		VariantsPerLeg:         10,
		MaxTripPairs:           20,
		MaxCandidates:          1000,
		TimeOfDayBuckets:       8,
		NearbyAirportsLimit:    2,
		NearbyStaysLimit:       12,
		DefaultStayNights:      3,
	}
}

// dayUTC truncates an instant to day granularity in UTC.
func dayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dateVariants expands a requested date into its candidate set. An explicit
// date with flexible dates off is used as-is; otherwise the anchor (explicit
// date, or the supplied fallback) is expanded symmetrically by ±windowDays.
// The result is never empty and is emitted in ascending order.
func dateVariants(explicit *time.Time, fallback time.Time, flexible bool, windowDays int) []time.Time {
	if explicit != nil && !flexible {
		return []time.Time{dayUTC(*explicit)}
	}

	anchor := fallback
	if explicit != nil {
		anchor = *explicit
	}
	anchor = dayUTC(anchor)

	variants := make([]time.Time, 0, 2*windowDays+1)
	for offset := -windowDays; offset <= windowDays; offset++ {
		variants = append(variants, anchor.AddDate(0, 0, offset))
	}
	return variants
}

// collector accumulates generated candidates, discarding content-hash
// duplicates and truncating at the hard cap. It is the bounded-generator
// replacement for mid-loop break sentinels: generators stop as soon as add
// reports the cap was hit.
type collector[T any] struct {
	limit int
	seen  map[uint32]struct{}
	items []T
}

func newCollector[T any](limit int) *collector[T] {
	return &collector[T]{
		limit: limit,
		seen:  make(map[uint32]struct{}),
	}
}

// add records a candidate unless its content hash was already emitted in this
// run. It returns false once the collector is full; callers must stop
// generating.
func (c *collector[T]) add(hash uint32, item T) bool {
	if len(c.items) >= c.limit {
		return false
	}
	if _, dup := c.seen[hash]; dup {
		return true
	}
	c.seen[hash] = struct{}{}
	c.items = append(c.items, item)
	return len(c.items) < c.limit
}
