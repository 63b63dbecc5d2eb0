package domain

// SortDirection is the order of a sort key.
type SortDirection string

// Available sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the sort direction is a valid value.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// FlightSortFactor identifies a derived numeric sort key for flight offers.
type FlightSortFactor string

// Available flight sort factors.
const (
	// FlightSortPrice sorts by total offer price.
	FlightSortPrice FlightSortFactor = "price"

	// FlightSortScore sorts by the composite value score.
	FlightSortScore FlightSortFactor = "score"

	// FlightSortDuration sorts by combined leg duration.
	FlightSortDuration FlightSortFactor = "duration"

	// FlightSortRating sorts by airline rating.
	FlightSortRating FlightSortFactor = "rating"

	// FlightSortTimeToDeparture sorts by minutes until departure.
	FlightSortTimeToDeparture FlightSortFactor = "timetodeparture"
)

// IsValid checks if the sort factor is a valid value.
func (f FlightSortFactor) IsValid() bool {
	switch f {
	case FlightSortPrice, FlightSortScore, FlightSortDuration, FlightSortRating, FlightSortTimeToDeparture:
		return true
	default:
		return false
	}
}

// StaySortFactor identifies a derived numeric sort key for stay offers.
type StaySortFactor string

// Available stay sort factors.
const (
	StaySortPrice  StaySortFactor = "price"
	StaySortScore  StaySortFactor = "score"
	StaySortRating StaySortFactor = "rating"
)

// IsValid checks if the sort factor is a valid value.
func (f StaySortFactor) IsValid() bool {
	switch f {
	case StaySortPrice, StaySortScore, StaySortRating:
		return true
	default:
		return false
	}
}

// MinuteRange is a time-of-day window in minutes from midnight UTC, inclusive
// on both ends.
type MinuteRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains checks if a minute-of-day value falls within the range.
func (r *MinuteRange) Contains(minuteOfDay int) bool {
	if r == nil {
		return true
	}
	return minuteOfDay >= r.Start && minuteOfDay <= r.End
}

// FlightFilterOptions defines optional predicates applied to generated flight
// offers after sorting. Nil/empty fields are skipped.
type FlightFilterOptions struct {
	// PriceMin and PriceMax bound the total offer price, inclusive.
	PriceMin *int `json:"priceMin,omitempty"`
	PriceMax *int `json:"priceMax,omitempty"`

	// Ratings lists accepted whole-number rating buckets. A requested rating
	// of 4 also matches 5-star airlines; this quirk is deliberate and
	// matches the shipped behavior.
	Ratings []int `json:"ratings,omitempty"`

	// AirlineIDs restricts offers to the listed airline companies.
	AirlineIDs []uint `json:"airlineIds,omitempty"`

	// DepartureTimeOfDay restricts the depart leg's departure time.
	DepartureTimeOfDay *MinuteRange `json:"departureTimeOfDay,omitempty"`
}

// MatchesOffer checks if a flight offer passes all filter criteria.
func (f *FlightFilterOptions) MatchesOffer(o *FlightOffer) bool {
	if f == nil {
		return true
	}
	if f.PriceMin != nil && o.TotalPrice < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && o.TotalPrice > *f.PriceMax {
		return false
	}
	if !matchesRating(f.Ratings, o.Depart.Airline.Rating) {
		return false
	}
	if len(f.AirlineIDs) > 0 {
		found := false
		for _, id := range f.AirlineIDs {
			if id == o.Depart.Airline.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.DepartureTimeOfDay != nil {
		depart := o.Depart.DepartAt.UTC()
		minute := depart.Hour()*60 + depart.Minute()
		if !f.DepartureTimeOfDay.Contains(minute) {
			return false
		}
	}
	return true
}

// StayFilterOptions defines optional predicates applied to generated stay
// offers after sorting. Nil/empty fields are skipped.
type StayFilterOptions struct {
	PriceMin *int `json:"priceMin,omitempty"`
	PriceMax *int `json:"priceMax,omitempty"`

	// Ratings lists accepted whole-number rating buckets, with the same
	// 4-also-matches-5 behavior as flights.
	Ratings []int `json:"ratings,omitempty"`
}

// MatchesOffer checks if a stay offer passes all filter criteria.
func (f *StayFilterOptions) MatchesOffer(o *StayOffer) bool {
	if f == nil {
		return true
	}
	if f.PriceMin != nil && o.TotalPrice < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && o.TotalPrice > *f.PriceMax {
		return false
	}
	return matchesRating(f.Ratings, o.Stay.Rating)
}

// matchesRating checks rating-bucket membership. An empty want list matches
// everything. A requested bucket of 4 also matches bucket 5; other buckets are
// exact. The asymmetry is preserved from the shipped behavior.
func matchesRating(want []int, rating float64) bool {
	if len(want) == 0 {
		return true
	}
	bucket := int(rating)
	for _, w := range want {
		if w == bucket {
			return true
		}
		if w == 4 && bucket == 5 {
			return true
		}
	}
	return false
}
