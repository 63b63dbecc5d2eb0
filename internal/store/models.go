package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

// flightRow is the GORM model backing durable flights. ContentHash is the
// lowercase-hex rendering of the domain content hash and carries the
// uniqueness guarantee reconciliation relies on.
type flightRow struct {
	ID          uint   `gorm:"primaryKey"`
	ContentHash string `gorm:"column:content_hash;uniqueIndex;size:8"`

	AirlineID     uint
	AirplaneID    uint
	OriginID      uint
	DestinationID uint
	DepartAt      time.Time
	ArriveAt      time.Time

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (flightRow) TableName() string {
	return "flights"
}

// flightOfferRow references the durable flight rows of its legs, so flights
// must be reconciled first.
type flightOfferRow struct {
	ID          uint   `gorm:"primaryKey"`
	ContentHash string `gorm:"column:content_hash;uniqueIndex;size:8"`

	DepartFlightID uint
	ReturnFlightID *uint // nil for one-way offers
	Class          string
	Passengers     int
	TotalPrice     int

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (flightOfferRow) TableName() string {
	return "flight_offers"
}

type stayOfferRow struct {
	ID          uint   `gorm:"primaryKey"`
	ContentHash string `gorm:"column:content_hash;uniqueIndex;size:8"`

	StayID     uint
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Rooms      int
	TotalPrice int

	Version   int `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (stayOfferRow) TableName() string {
	return "stay_offers"
}

// favouriteRow holds the per-user favourite flag of one offer. The composite
// unique index makes (user, kind, offer) the logical key; Version backs the
// optimistic toggle path.
type favouriteRow struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex:idx_user_offer;size:64"`
	OfferKind string `gorm:"uniqueIndex:idx_user_offer;size:16"`
	OfferID   uint   `gorm:"uniqueIndex:idx_user_offer"`

	IsFavourite bool
	Version     int `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (favouriteRow) TableName() string {
	return "user_favourites"
}

// AutoMigrate creates or updates the offer tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&flightRow{}, &flightOfferRow{}, &stayOfferRow{}, &favouriteRow{})
}

func newFlightRow(f *domain.Flight) flightRow {
	return flightRow{
		ContentHash:   HashKey(f.ContentHash()),
		AirlineID:     f.Airline.ID,
		AirplaneID:    f.Airplane.ID,
		OriginID:      f.Origin.ID,
		DestinationID: f.Destination.ID,
		DepartAt:      f.DepartAt,
		ArriveAt:      f.ArriveAt,
	}
}

func newFlightOfferRow(o *domain.FlightOffer) (flightOfferRow, error) {
	departID, ok := o.Depart.ID.Value()
	if !ok {
		return flightOfferRow{}, errTransientLeg
	}
	row := flightOfferRow{
		ContentHash:    HashKey(o.ContentHash()),
		DepartFlightID: departID,
		Class:          string(o.Class),
		Passengers:     o.Passengers,
		TotalPrice:     o.TotalPrice,
	}
	if o.Return != nil {
		returnID, ok := o.Return.ID.Value()
		if !ok {
			return flightOfferRow{}, errTransientLeg
		}
		row.ReturnFlightID = &returnID
	}
	return row, nil
}

func newStayOfferRow(o *domain.StayOffer) stayOfferRow {
	return stayOfferRow{
		ContentHash: HashKey(o.ContentHash()),
		StayID:      o.Stay.ID,
		CheckIn:     o.CheckIn,
		CheckOut:    o.CheckOut,
		Guests:      o.Guests,
		Rooms:       o.Rooms,
		TotalPrice:  o.TotalPrice,
	}
}
