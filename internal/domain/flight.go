// Package domain contains the core entities and rules of the synthetic offer
// engine. Entities are generated in memory, deduplicated by content hash, and
// only promoted to durable rows when they land on a returned page.
package domain

import (
	"strconv"
	"time"

	"github.com/travel-offers/offer-search-engine/internal/hashing"
)

// ServiceClass is the cabin class of a flight offer.
type ServiceClass string

// Available service classes, cheapest first.
const (
	ClassEconomy  ServiceClass = "economy"
	ClassComfort  ServiceClass = "comfort"
	ClassBusiness ServiceClass = "business"
)

// IsValid checks if the service class is a known value.
func (c ServiceClass) IsValid() bool {
	switch c {
	case ClassEconomy, ClassComfort, ClassBusiness:
		return true
	default:
		return false
	}
}

// TripType distinguishes one-way from return flight searches.
type TripType string

// Available trip types.
const (
	TripOneWay TripType = "oneway"
	TripReturn TripType = "return"
)

// IsValid checks if the trip type is a known value.
func (t TripType) IsValid() bool {
	return t == TripOneWay || t == TripReturn
}

// Flight is a single synthetic flight leg. Flights begin transient and may be
// shared by several offers on a page; reconciliation assigns the durable
// identity in place, which is why offers hold flights by pointer.
type Flight struct {
	ID          Identity
	Airline     AirlineCompany
	Airplane    Airplane
	Origin      Airport
	Destination Airport

	// DepartAt and ArriveAt are scheduled instants in UTC.
	DepartAt time.Time
	ArriveAt time.Time
}

// ContentHash returns the deterministic fingerprint of the flight's semantic
// fields: airport ids, minute-rounded times, airline id and airplane id.
// Price and in-memory identity do not participate, so the hash is stable
// across process restarts and generation runs.
func (f *Flight) ContentHash() uint32 {
	return hashing.SumParts(
		"flight",
		strconv.FormatUint(uint64(f.Origin.ID), 10),
		strconv.FormatUint(uint64(f.Destination.ID), 10),
		strconv.FormatInt(f.DepartAt.UTC().Truncate(time.Minute).Unix(), 10),
		strconv.FormatInt(f.ArriveAt.UTC().Truncate(time.Minute).Unix(), 10),
		strconv.FormatUint(uint64(f.Airline.ID), 10),
		strconv.FormatUint(uint64(f.Airplane.ID), 10),
	)
}

// DurationMinutes returns the scheduled leg duration in whole minutes.
func (f *Flight) DurationMinutes() int {
	return int(f.ArriveAt.Sub(f.DepartAt) / time.Minute)
}

// FlightOffer is a priced flight proposal: a depart leg, an optional return
// leg, a cabin class and a passenger count.
type FlightOffer struct {
	ID         Identity
	Depart     *Flight
	Return     *Flight // nil for one-way trips
	Class      ServiceClass
	Passengers int

	// IsFavourite is store-owned per-user state resolved during
	// reconciliation; it never participates in the content hash.
	IsFavourite bool

	// TotalPrice is the deterministic price for all passengers, in whole
	// currency units.
	TotalPrice int
}

// ContentHash returns the offer fingerprint, derived from the two flight
// hashes, the class and the passenger count.
func (o *FlightOffer) ContentHash() uint32 {
	var returnHash uint32
	if o.Return != nil {
		returnHash = o.Return.ContentHash()
	}
	return hashing.SumParts(
		"flight-offer",
		strconv.FormatUint(uint64(o.Depart.ContentHash()), 10),
		strconv.FormatUint(uint64(returnHash), 10),
		string(o.Class),
		strconv.Itoa(o.Passengers),
	)
}

// DurationMinutes returns the combined scheduled duration of both legs.
func (o *FlightOffer) DurationMinutes() int {
	total := o.Depart.DurationMinutes()
	if o.Return != nil {
		total += o.Return.DurationMinutes()
	}
	return total
}
