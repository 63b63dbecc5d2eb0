// Package pricing computes deterministic prices for synthetic flight legs and
// stay nights. Prices are derived from entity display-name hashes plus numeric
// trip attributes, so identical inputs always produce identical amounts; there
// is no state and no randomness.
package pricing

import (
	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/hashing"
)

// Base amounts per service tier, in whole currency units.
const (
	baseEconomy  = 200
	baseComfort  = 400
	baseBusiness = 700

	baseStay     = 100
	baseCityView = 150
	baseLakeView = 200
)

// Additive adjustment weights. Each entity contributes (hash(name) mod 5) * weight.
const (
	companyWeight  = 10
	airportWeight  = 8
	airplaneWeight = 5
	cityWeight     = 15
	stayWeight     = 20

	hashModulus = 5
)

// Small per-unit coefficients for trip attributes.
const (
	perKilometer = 0.05
	perMinute    = 0.1
)

// Engine prices flight legs and stay nights. The zero granularity disables
// rounding; a positive granularity rounds to its nearest multiple with the
// midpoint rounding up.
type Engine struct {
	granularity int
}

// New creates an Engine with the given rounding granularity.
func New(granularity int) *Engine {
	if granularity < 0 {
		granularity = 0
	}
	return &Engine{granularity: granularity}
}

// FlightLeg returns the price of one passenger on one flight leg.
func (e *Engine) FlightLeg(company domain.AirlineCompany, origin domain.Airport, airplane domain.Airplane, distanceKm float64, durationMinutes int, class domain.ServiceClass) int {
	amount := float64(flightBase(class))
	amount += float64(nameAdjustment(company.Name, companyWeight))
	amount += float64(nameAdjustment(origin.Name, airportWeight))
	amount += float64(nameAdjustment(airplane.Name, airplaneWeight))
	amount += distanceKm * perKilometer
	amount += float64(durationMinutes) * perMinute
	return e.round(int(amount))
}

// StayNight returns the per-night price of one room at the given service level.
func (e *Engine) StayNight(city domain.City, stay domain.Stay, level domain.StayServiceLevel) int {
	amount := stayBaseAmount(level)
	amount += nameAdjustment(city.Name, cityWeight)
	amount += nameAdjustment(stay.Name, stayWeight)
	return e.round(amount)
}

// round snaps the amount to the configured granularity, rounding half up.
func (e *Engine) round(amount int) int {
	if e.granularity <= 0 {
		return amount
	}
	g := e.granularity
	return (amount + g/2) / g * g
}

func nameAdjustment(displayName string, weight int) int {
	return int(hashing.Sum(displayName)%hashModulus) * weight
}

func flightBase(class domain.ServiceClass) int {
	switch class {
	case domain.ClassComfort:
		return baseComfort
	case domain.ClassBusiness:
		return baseBusiness
	default:
		return baseEconomy
	}
}

func stayBaseAmount(level domain.StayServiceLevel) int {
	switch level {
	case domain.StayLevelCityView:
		return baseCityView
	case domain.StayLevelLakeView:
		return baseLakeView
	default:
		return baseStay
	}
}
