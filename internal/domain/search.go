package domain

import (
	"fmt"
	"time"
)

// Passenger and room limits for a single search.
const (
	MaxPassengers = 9
	MaxRooms      = 4
	MaxGuests     = 10
)

// FlightSearchFilter is the immutable input of one flight search call. Route
// endpoints are optional; unspecified sides are expanded from reference data.
type FlightSearchFilter struct {
	// FromCitySlug and ToCitySlug identify the route endpoints. Either or
	// both may be empty, in which case the generator enumerates candidates.
	FromCitySlug string `json:"fromCitySlug,omitempty"`
	ToCitySlug   string `json:"toCitySlug,omitempty"`

	// DepartDate and ReturnDate are requested dates at day granularity (UTC).
	DepartDate *time.Time `json:"departDate,omitempty"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`

	// FlexibleDates expands each requested date into a symmetric window of
	// candidate dates.
	FlexibleDates bool `json:"flexibleDates,omitempty"`

	TripType   TripType     `json:"tripType"`
	Passengers int          `json:"passengers"`
	Class      ServiceClass `json:"class"`
}

// Validate checks the filter.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (f *FlightSearchFilter) Validate() error {
	if !f.TripType.IsValid() {
		return fmt.Errorf("%w: tripType must be one of: oneway, return; got %q", ErrInvalidRequest, f.TripType)
	}
	if !f.Class.IsValid() {
		return fmt.Errorf("%w: class must be one of: economy, comfort, business; got %q", ErrInvalidRequest, f.Class)
	}
	if f.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be at least 1", ErrInvalidRequest)
	}
	if f.Passengers > MaxPassengers {
		return fmt.Errorf("%w: passengers cannot exceed %d", ErrInvalidRequest, MaxPassengers)
	}
	if f.FromCitySlug != "" && f.FromCitySlug == f.ToCitySlug {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (f *FlightSearchFilter) SetDefaults() {
	if f.TripType == "" {
		f.TripType = TripOneWay
	}
	if f.Class == "" {
		f.Class = ClassEconomy
	}
	if f.Passengers == 0 {
		f.Passengers = 1
	}
}

// StaySearchFilter is the immutable input of one stay search call.
type StaySearchFilter struct {
	// CitySlug identifies the destination city. Required.
	CitySlug string `json:"citySlug"`

	// CheckIn and CheckOut are requested dates at day granularity (UTC).
	CheckIn  *time.Time `json:"checkIn,omitempty"`
	CheckOut *time.Time `json:"checkOut,omitempty"`

	// FlexibleDates expands the check-in date into a symmetric window of
	// candidate dates.
	FlexibleDates bool `json:"flexibleDates,omitempty"`

	Guests int `json:"guests"`
	Rooms  int `json:"rooms"`
}

// Validate checks the filter.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (f *StaySearchFilter) Validate() error {
	if f.CitySlug == "" {
		return fmt.Errorf("%w: citySlug is required", ErrInvalidRequest)
	}
	if f.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrInvalidRequest)
	}
	if f.Guests > MaxGuests {
		return fmt.Errorf("%w: guests cannot exceed %d", ErrInvalidRequest, MaxGuests)
	}
	if f.Rooms < 1 {
		return fmt.Errorf("%w: rooms must be at least 1", ErrInvalidRequest)
	}
	if f.Rooms > MaxRooms {
		return fmt.Errorf("%w: rooms cannot exceed %d", ErrInvalidRequest, MaxRooms)
	}
	if f.CheckIn != nil && f.CheckOut != nil && !f.CheckOut.After(*f.CheckIn) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidRequest)
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (f *StaySearchFilter) SetDefaults() {
	if f.Guests == 0 {
		f.Guests = 1
	}
	if f.Rooms == 0 {
		f.Rooms = 1
	}
}

// Page is a skip/take pagination window.
type Page struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}

// Validate checks the pagination window.
func (p Page) Validate() error {
	if p.Skip < 0 {
		return fmt.Errorf("%w: skip must not be negative", ErrInvalidRequest)
	}
	if p.Take < 1 {
		return fmt.Errorf("%w: take must be at least 1", ErrInvalidRequest)
	}
	return nil
}
