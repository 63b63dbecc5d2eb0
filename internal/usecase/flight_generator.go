package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/hashing"
	"github.com/travel-offers/offer-search-engine/internal/pricing"
)

// Synthetic flight-time constants.
const (
	// taxiMinutes is the fixed per-leg overhead added to the cruise time.
	taxiMinutes = 40

	// cruiseKmPerMinute converts great-circle distance to cruise minutes.
	cruiseKmPerMinute = 14.0

	// durationJitterMinutes is the maximum deterministic jitter added to a
	// leg duration.
	durationJitterMinutes = 25
)

// Leg indexes used in variant hash seeds.
const (
	departLegIndex = 0
	returnLegIndex = 1
)

// FlightGenerator expands a flight search filter into a bounded set of priced
// candidate offers. Generation is a pure function of the filter and the
// supplied "now": it performs no writes and uses no randomness beyond the
// deterministic hash selector.
type FlightGenerator struct {
	airports  domain.AirportSource
	airlines  domain.AirlineSource
	airplanes domain.AirplaneSource
	pricer    *pricing.Engine
	cfg       GenerationConfig
}

// NewFlightGenerator creates a FlightGenerator with explicit collaborators.
func NewFlightGenerator(airports domain.AirportSource, airlines domain.AirlineSource, airplanes domain.AirplaneSource, pricer *pricing.Engine, cfg GenerationConfig) *FlightGenerator {
	return &FlightGenerator{
		airports:  airports,
		airlines:  airlines,
		airplanes: airplanes,
		pricer:    pricer,
		cfg:       cfg,
	}
}

// route is one (origin, destination) candidate pair.
type route struct {
	origin      domain.Airport
	destination domain.Airport
}

// Generate produces the candidate offer set for the filter. It fails with a
// wrapped ErrRequiredDataMissing when any reference dataset needed for
// generation is empty.
func (g *FlightGenerator) Generate(ctx context.Context, filter domain.FlightSearchFilter, now time.Time) ([]*domain.FlightOffer, error) {
	companies, err := g.airlines.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.NewMissingDataError("airline companies")
	}

	airplanes, err := g.airplanes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(airplanes) == 0 {
		return nil, domain.NewMissingDataError("airplanes")
	}

	routes, err := g.routeVariants(ctx, filter)
	if err != nil {
		return nil, err
	}

	gen := &flightRun{
		FlightGenerator: g,
		filter:          filter,
		companies:       companies,
		airplanes:       airplanes,
		flights:         make(map[uint32]*domain.Flight),
		out:             newCollector[*domain.FlightOffer](g.cfg.MaxCandidates),
	}

	if filter.TripType == domain.TripReturn {
		gen.generateRoundTrips(routes, now)
	} else {
		gen.generateOneWays(routes, now)
	}
	return gen.out.items, nil
}

// endpointAirports resolves one side of the route: the city's airports when a
// slug is given, every known airport otherwise.
func (g *FlightGenerator) endpointAirports(ctx context.Context, citySlug string) ([]domain.Airport, error) {
	var (
		airports []domain.Airport
		err      error
	)
	if citySlug == "" {
		airports, err = g.airports.ListAll(ctx)
	} else {
		airports, err = g.airports.ListNear(ctx, citySlug, g.cfg.NearbyAirportsLimit)
	}
	if err != nil {
		return nil, err
	}
	if len(airports) == 0 {
		return nil, domain.NewMissingDataError("airports")
	}
	return airports, nil
}

// routeVariants enumerates candidate routes. A fully specified filter yields
// its single route; under-specified sides are paired by prime-stride index
// arithmetic, bounded by MaxRoutePairs, with self-pairs excluded.
func (g *FlightGenerator) routeVariants(ctx context.Context, filter domain.FlightSearchFilter) ([]route, error) {
	from, err := g.endpointAirports(ctx, filter.FromCitySlug)
	if err != nil {
		return nil, err
	}
	to, err := g.endpointAirports(ctx, filter.ToCitySlug)
	if err != nil {
		return nil, err
	}

	maxPairs := g.cfg.MaxRoutePairs
	if filter.FromCitySlug != "" && filter.ToCitySlug != "" {
		maxPairs = 1
	}

	seen := make(map[[2]uint]struct{})
	var routes []route
	total := len(from) * len(to)
	for i := 0; i < total && len(routes) < maxPairs; i++ {
		origin := from[i%len(from)]
		dest := to[(i*pairingStride+i/len(from))%len(to)]
		if origin.ID == dest.ID {
			continue
		}
		key := [2]uint{origin.ID, dest.ID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		routes = append(routes, route{origin: origin, destination: dest})
	}
	return routes, nil
}

// flightRun holds the per-call generation state: the interned flight pool and
// the bounded output collector.
type flightRun struct {
	*FlightGenerator
	filter    domain.FlightSearchFilter
	companies []domain.AirlineCompany
	airplanes []domain.Airplane

	// flights interns generated legs by content hash so that offers built
	// from overlapping variants share one *Flight value; reconciliation
	// then assigns each durable identity exactly once.
	flights map[uint32]*domain.Flight

	out *collector[*domain.FlightOffer]
}

func (r *flightRun) generateOneWays(routes []route, now time.Time) {
	departDates := dateVariants(r.filter.DepartDate, now, r.filter.FlexibleDates, r.cfg.FlexibleDateWindowDays)

	for _, date := range departDates {
		for _, rt := range routes {
			for _, leg := range r.legVariants(date, rt.origin, rt.destination, departLegIndex) {
				offer := r.assembleOffer(leg, nil)
				if !r.out.add(offer.ContentHash(), offer) {
					return
				}
			}
		}
	}
}

func (r *flightRun) generateRoundTrips(routes []route, now time.Time) {
	departDates, returnDates := r.tripDates(now)

	for _, dd := range departDates {
		for _, rd := range returnDates {
			if !rd.After(dd) {
				continue
			}
			if !r.emitTripPairs(routes, dd, rd) {
				return
			}
		}
	}

	if len(r.out.items) == 0 && len(returnDates) > 0 {
		// Every (depart, return) pair was filtered out; fall back to the
		// earliest valid return date on both sides rather than producing an
		// empty date set.
		day := returnDates[0]
		r.emitTripPairs(routes, day, day)
	}
}

// tripDates expands both trip dates. When one side has no explicit date its
// anchor is derived from the paired date, or from now.
func (r *flightRun) tripDates(now time.Time) (departDates, returnDates []time.Time) {
	departFallback := now
	if r.filter.DepartDate == nil && r.filter.ReturnDate != nil {
		departFallback = r.filter.ReturnDate.AddDate(0, 0, -1)
	}
	returnFallback := now.AddDate(0, 0, 1)
	if r.filter.ReturnDate == nil && r.filter.DepartDate != nil {
		returnFallback = r.filter.DepartDate.AddDate(0, 0, 1)
	}

	departDates = dateVariants(r.filter.DepartDate, departFallback, r.filter.FlexibleDates, r.cfg.FlexibleDateWindowDays)
	returnDates = dateVariants(r.filter.ReturnDate, returnFallback, r.filter.FlexibleDates, r.cfg.FlexibleDateWindowDays)
	return departDates, returnDates
}

// emitTripPairs combines depart and return leg variants for one date pair
// across all routes. It returns false once the collector is full.
func (r *flightRun) emitTripPairs(routes []route, departDay, returnDay time.Time) bool {
	for _, rt := range routes {
		departLegs := r.legVariants(departDay, rt.origin, rt.destination, departLegIndex)
		returnLegs := r.legVariants(returnDay, rt.destination, rt.origin, returnLegIndex)
		if len(returnLegs) > 1 {
			// Dropping the first computed slot avoids pairing two legs
			// generated from the same variant index on both sides.
			returnLegs = returnLegs[1:]
		}

		pairs := len(departLegs) * len(returnLegs)
		for i := 0; i < pairs && i < r.cfg.MaxTripPairs; i++ {
			depart := departLegs[i%len(departLegs)]
			ret := returnLegs[(i*pairingStride)%len(returnLegs)]
			offer := r.assembleOffer(depart, ret)
			if !r.out.add(offer.ContentHash(), offer) {
				return false
			}
		}
	}
	return true
}

// legVariants generates the configured number of flight-time variants for one
// (date, route, leg) triple. Airline, airplane, time-of-day bucket and
// duration jitter are all selected by hashing the variant seed.
func (r *flightRun) legVariants(day time.Time, origin, dest domain.Airport, legIndex int) []*domain.Flight {
	distance := domain.DistanceKm(origin, dest)
	bucketMinutes := (24 * 60) / r.cfg.TimeOfDayBuckets

	legs := make([]*domain.Flight, 0, r.cfg.VariantsPerLeg)
	for v := 0; v < r.cfg.VariantsPerLeg; v++ {
		seed := strings.Join([]string{day.Format("2006-01-02"), origin.Name, dest.Name, strconv.Itoa(legIndex), strconv.Itoa(v)}, "|")

		airline := r.companies[hashing.Pick(seed+"|company", len(r.companies))]
		airplane := r.airplanes[hashing.Pick(seed+"|airplane", len(r.airplanes))]

		bucket := hashing.Pick(seed+"|slot", r.cfg.TimeOfDayBuckets)
		minuteInBucket := hashing.Pick(seed+"|minute", bucketMinutes)
		departAt := day.Add(time.Duration(bucket*bucketMinutes+minuteInBucket) * time.Minute)

		duration := taxiMinutes + int(distance/cruiseKmPerMinute) + hashing.Pick(seed+"|jitter", durationJitterMinutes)

		leg := &domain.Flight{
			Airline:     airline,
			Airplane:    airplane,
			Origin:      origin,
			Destination: dest,
			DepartAt:    departAt,
			ArriveAt:    departAt.Add(time.Duration(duration) * time.Minute),
		}
		legs = append(legs, r.intern(leg))
	}
	return legs
}

// intern returns the canonical *Flight for the leg's content hash.
func (r *flightRun) intern(leg *domain.Flight) *domain.Flight {
	hash := leg.ContentHash()
	if existing, ok := r.flights[hash]; ok {
		return existing
	}
	r.flights[hash] = leg
	return leg
}

func (r *flightRun) assembleOffer(depart, ret *domain.Flight) *domain.FlightOffer {
	total := r.legPrice(depart)
	if ret != nil {
		total += r.legPrice(ret)
	}
	return &domain.FlightOffer{
		Depart:     depart,
		Return:     ret,
		Class:      r.filter.Class,
		Passengers: r.filter.Passengers,
		TotalPrice: total * r.filter.Passengers,
	}
}

func (r *flightRun) legPrice(leg *domain.Flight) int {
	distance := domain.DistanceKm(leg.Origin, leg.Destination)
	return r.pricer.FlightLeg(leg.Airline, leg.Origin, leg.Airplane, distance, leg.DurationMinutes(), r.filter.Class)
}
