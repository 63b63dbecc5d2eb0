package usecase

import (
	"time"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

// Composite score weights. The score normalizes each ingredient over the full
// candidate set, so it is only meaningful relative to the other candidates of
// the same search.
const (
	// weightPrice has the highest impact on the flight score (50%).
	weightPrice = 0.5

	// weightDuration has moderate impact (30%).
	weightDuration = 0.3

	// weightRating has the lowest impact (20%).
	weightRating = 0.2

	// Stay scores only weigh price and rating.
	stayWeightPrice  = 0.7
	stayWeightRating = 0.3
)

// factorFunc returns the derived numeric sort factor of one candidate.
// Factors are computed on demand and never persisted.
type factorFunc[T any] func(T) float64

// flightFactors resolves factorFuncs for a fixed candidate set. The composite
// score is precomputed because its normalization needs the whole set.
type flightFactors struct {
	now    time.Time
	scores map[*domain.FlightOffer]float64
}

func newFlightFactors(offers []*domain.FlightOffer, now time.Time) *flightFactors {
	return &flightFactors{
		now:    now,
		scores: flightScores(offers),
	}
}

// factor resolves one sort factor to its value function.
func (f *flightFactors) factor(factor domain.FlightSortFactor) factorFunc[*domain.FlightOffer] {
	switch factor {
	case domain.FlightSortDuration:
		return func(o *domain.FlightOffer) float64 { return float64(o.DurationMinutes()) }
	case domain.FlightSortTimeToDeparture:
		return func(o *domain.FlightOffer) float64 { return o.Depart.DepartAt.Sub(f.now).Minutes() }
	case domain.FlightSortRating:
		return func(o *domain.FlightOffer) float64 { return o.Depart.Airline.Rating }
	case domain.FlightSortScore:
		return func(o *domain.FlightOffer) float64 { return f.scores[o] }
	default:
		return func(o *domain.FlightOffer) float64 { return float64(o.TotalPrice) }
	}
}

// flightScores computes the composite value score per offer:
//
//	Score = 0.5×(1−NormPrice) + 0.3×(1−NormDuration) + 0.2×NormRating
//
// Normalized values are in [0, 1] over the candidate set; higher score means
// better value.
func flightScores(offers []*domain.FlightOffer) map[*domain.FlightOffer]float64 {
	scores := make(map[*domain.FlightOffer]float64, len(offers))
	if len(offers) == 0 {
		return scores
	}

	minPrice, maxPrice := float64(offers[0].TotalPrice), float64(offers[0].TotalPrice)
	minDuration, maxDuration := float64(offers[0].DurationMinutes()), float64(offers[0].DurationMinutes())
	minRating, maxRating := offers[0].Depart.Airline.Rating, offers[0].Depart.Airline.Rating
	for _, o := range offers {
		minPrice = min(minPrice, float64(o.TotalPrice))
		maxPrice = max(maxPrice, float64(o.TotalPrice))
		minDuration = min(minDuration, float64(o.DurationMinutes()))
		maxDuration = max(maxDuration, float64(o.DurationMinutes()))
		minRating = min(minRating, o.Depart.Airline.Rating)
		maxRating = max(maxRating, o.Depart.Airline.Rating)
	}

	for _, o := range offers {
		scores[o] = weightPrice*(1-normalize(float64(o.TotalPrice), minPrice, maxPrice)) +
			weightDuration*(1-normalize(float64(o.DurationMinutes()), minDuration, maxDuration)) +
			weightRating*normalize(o.Depart.Airline.Rating, minRating, maxRating)
	}
	return scores
}

// stayFactors is the stay counterpart of flightFactors.
type stayFactors struct {
	scores map[*domain.StayOffer]float64
}

func newStayFactors(offers []*domain.StayOffer) *stayFactors {
	return &stayFactors{scores: stayScores(offers)}
}

func (f *stayFactors) factor(factor domain.StaySortFactor) factorFunc[*domain.StayOffer] {
	switch factor {
	case domain.StaySortRating:
		return func(o *domain.StayOffer) float64 { return o.Stay.Rating }
	case domain.StaySortScore:
		return func(o *domain.StayOffer) float64 { return f.scores[o] }
	default:
		return func(o *domain.StayOffer) float64 { return float64(o.TotalPrice) }
	}
}

func stayScores(offers []*domain.StayOffer) map[*domain.StayOffer]float64 {
	scores := make(map[*domain.StayOffer]float64, len(offers))
	if len(offers) == 0 {
		return scores
	}

	minPrice, maxPrice := float64(offers[0].TotalPrice), float64(offers[0].TotalPrice)
	minRating, maxRating := offers[0].Stay.Rating, offers[0].Stay.Rating
	for _, o := range offers {
		minPrice = min(minPrice, float64(o.TotalPrice))
		maxPrice = max(maxPrice, float64(o.TotalPrice))
		minRating = min(minRating, o.Stay.Rating)
		maxRating = max(maxRating, o.Stay.Rating)
	}

	for _, o := range offers {
		scores[o] = stayWeightPrice*(1-normalize(float64(o.TotalPrice), minPrice, maxPrice)) +
			stayWeightRating*normalize(o.Stay.Rating, minRating, maxRating)
	}
	return scores
}

// normalize maps value into [0, 1] relative to [low, high].
// Returns 0 when low == high so uniform sets score as equally optimal.
func normalize(value, low, high float64) float64 {
	if high == low {
		return 0
	}
	return (value - low) / (high - low)
}
