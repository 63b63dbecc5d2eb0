package domain

import (
	"strconv"
	"time"

	"github.com/travel-offers/offer-search-engine/internal/hashing"
)

// StayServiceLevel is the room tier of a stay offer, cheapest first.
type StayServiceLevel string

// Available stay service levels.
const (
	StayLevelBase     StayServiceLevel = "base"
	StayLevelCityView StayServiceLevel = "cityView"
	StayLevelLakeView StayServiceLevel = "lakeView"
)

// StayServiceLevels lists all levels in ascending price order.
var StayServiceLevels = []StayServiceLevel{StayLevelBase, StayLevelCityView, StayLevelLakeView}

// StayOffer is a priced hotel proposal for a check-in/check-out pair.
type StayOffer struct {
	ID   Identity
	Stay Stay

	// CheckIn and CheckOut are day-granularity dates in UTC.
	CheckIn  time.Time
	CheckOut time.Time

	Guests int
	Rooms  int

	// IsFavourite is store-owned per-user state resolved during
	// reconciliation; it never participates in the content hash.
	IsFavourite bool

	// TotalPrice is the deterministic per-night amount for all rooms, in
	// whole currency units.
	TotalPrice int
}

// ContentHash returns the offer fingerprint, derived from the stay id, the
// day-rounded dates and the guest/room counts.
func (o *StayOffer) ContentHash() uint32 {
	return hashing.SumParts(
		"stay-offer",
		strconv.FormatUint(uint64(o.Stay.ID), 10),
		o.CheckIn.UTC().Format("2006-01-02"),
		o.CheckOut.UTC().Format("2006-01-02"),
		strconv.Itoa(o.Guests),
		strconv.Itoa(o.Rooms),
	)
}

// Nights returns the number of nights between check-in and check-out.
func (o *StayOffer) Nights() int {
	return int(o.CheckOut.Sub(o.CheckIn) / (24 * time.Hour))
}
