// Package http provides the HTTP handler layer for the offer search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"time"
)

// dateLayout is the wire format for day-granularity dates.
const dateLayout = "2006-01-02"

// SearchFlightOffersRequest represents the request body for flight offer search.
type SearchFlightOffersRequest struct {
	// FromCitySlug is the origin city slug (e.g. "paris"). Optional; when
	// empty, candidate origins are enumerated from reference data.
	FromCitySlug string `json:"fromCitySlug,omitempty"`

	// ToCitySlug is the destination city slug. Optional.
	ToCitySlug string `json:"toCitySlug,omitempty"`

	// DepartDate is the requested departure date in YYYY-MM-DD format.
	DepartDate string `json:"departDate,omitempty"`

	// ReturnDate is the requested return date in YYYY-MM-DD format.
	// Only meaningful for return trips.
	ReturnDate string `json:"returnDate,omitempty"`

	// FlexibleDates expands each requested date into a window of
	// neighbouring candidate dates.
	FlexibleDates bool `json:"flexibleDates,omitempty"`

	// TripType is oneway or return. Defaults to oneway.
	TripType string `json:"tripType,omitempty"`

	// Passengers is the number of passengers (1-9). Defaults to 1.
	Passengers int `json:"passengers,omitempty"`

	// Class is the cabin class: economy, comfort, or business. Defaults to economy.
	Class string `json:"class,omitempty"`

	// UserID resolves the per-user favourite flag on returned offers.
	UserID string `json:"userId,omitempty"`

	// Sort and SecondarySort are the two sort keys. Unset keys fall back
	// to score descending, then price ascending.
	Sort          *SortDTO `json:"sort,omitempty"`
	SecondarySort *SortDTO `json:"secondarySort,omitempty"`

	// Page is the skip/take window applied after filtering.
	Page *PageDTO `json:"page,omitempty"`

	// Filters contains optional filtering criteria.
	Filters *FlightFiltersDTO `json:"filters,omitempty"`

	// WithNarrowing requests the available filter ranges of the full
	// candidate set.
	WithNarrowing bool `json:"withNarrowing,omitempty"`

	// WithTopOffers requests the per-sort-factor price highlights.
	WithTopOffers bool `json:"withTopOffers,omitempty"`
}

// SearchStayOffersRequest represents the request body for stay offer search.
type SearchStayOffersRequest struct {
	// CitySlug is the destination city slug. Required.
	CitySlug string `json:"citySlug"`

	// CheckIn and CheckOut are requested dates in YYYY-MM-DD format.
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`

	// FlexibleDates expands the check-in date into a window of
	// neighbouring candidate dates.
	FlexibleDates bool `json:"flexibleDates,omitempty"`

	// Guests is the number of guests (1-10). Defaults to 1.
	Guests int `json:"guests,omitempty"`

	// Rooms is the number of rooms (1-4). Defaults to 1.
	Rooms int `json:"rooms,omitempty"`

	// UserID resolves the per-user favourite flag on returned offers.
	UserID string `json:"userId,omitempty"`

	// Sort is the single sort key. Defaults to price ascending.
	Sort *SortDTO `json:"sort,omitempty"`

	Page    *PageDTO        `json:"page,omitempty"`
	Filters *StayFiltersDTO `json:"filters,omitempty"`

	WithNarrowing bool `json:"withNarrowing,omitempty"`
}

// ToggleFavouriteRequest represents the request body for favourite toggles.
type ToggleFavouriteRequest struct {
	// UserID is the owner of the favourite flag. Required.
	UserID string `json:"userId"`
}

// SortDTO is one sort key.
type SortDTO struct {
	// Factor names the sort factor. Flight searches accept price, score,
	// duration, rating and timetodeparture; stay searches accept price,
	// score and rating.
	Factor string `json:"factor"`

	// Direction is asc or desc.
	Direction string `json:"direction,omitempty"`
}

// PageDTO is a skip/take pagination window.
type PageDTO struct {
	Skip int `json:"skip"`
	Take int `json:"take"`
}

// FlightFiltersDTO represents optional filters for flight offer search.
// Example: {"priceMax": 900, "ratings": [4], "departureTimeOfDay": {"start": 360, "end": 720}}
type FlightFiltersDTO struct {
	// PriceMin and PriceMax bound the total offer price, inclusive.
	PriceMin *int `json:"priceMin,omitempty"`
	PriceMax *int `json:"priceMax,omitempty"`

	// Ratings lists accepted whole-number airline rating buckets.
	Ratings []int `json:"ratings,omitempty"`

	// AirlineIDs restricts offers to the listed airline companies.
	AirlineIDs []uint `json:"airlineIds,omitempty"`

	// DepartureTimeOfDay restricts the depart leg's departure time, in
	// minutes from midnight UTC, inclusive on both ends.
	DepartureTimeOfDay *MinuteRangeDTO `json:"departureTimeOfDay,omitempty"`
}

// StayFiltersDTO represents optional filters for stay offer search.
type StayFiltersDTO struct {
	PriceMin *int  `json:"priceMin,omitempty"`
	PriceMax *int  `json:"priceMax,omitempty"`
	Ratings  []int `json:"ratings,omitempty"`
}

// MinuteRangeDTO is a time-of-day window in minutes from midnight UTC.
type MinuteRangeDTO struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Validation regex patterns.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Valid flight sort factors.
var validFlightSortFactors = map[string]bool{
	"price":           true,
	"score":           true,
	"duration":        true,
	"rating":          true,
	"timetodeparture": true,
}

// Valid stay sort factors.
var validStaySortFactors = map[string]bool{
	"price":  true,
	"score":  true,
	"rating": true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// ToMap converts the validation errors to a field->message map.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// add appends a field-level error.
func (v *ValidationErrors) add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// orNil returns nil when no errors were collected.
func (v *ValidationErrors) orNil() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return v
}

// Validate checks the request shape: date formats, sort vocabulary and the
// pagination window. Semantic rules (route endpoints, passenger limits, date
// ordering) are enforced by the domain filter.
func (r *SearchFlightOffersRequest) Validate() error {
	var errs ValidationErrors

	validateDate(&errs, "departDate", r.DepartDate)
	validateDate(&errs, "returnDate", r.ReturnDate)
	validateSort(&errs, "sort", r.Sort, validFlightSortFactors)
	validateSort(&errs, "secondarySort", r.SecondarySort, validFlightSortFactors)
	validatePage(&errs, r.Page)
	if r.Filters != nil {
		validateMinuteRange(&errs, "filters.departureTimeOfDay", r.Filters.DepartureTimeOfDay)
	}

	return errs.orNil()
}

// Validate checks the request shape. Semantic rules are enforced by the
// domain filter.
func (r *SearchStayOffersRequest) Validate() error {
	var errs ValidationErrors

	validateDate(&errs, "checkIn", r.CheckIn)
	validateDate(&errs, "checkOut", r.CheckOut)
	validateSort(&errs, "sort", r.Sort, validStaySortFactors)
	validatePage(&errs, r.Page)

	return errs.orNil()
}

func validateDate(errs *ValidationErrors, field, value string) {
	if value == "" {
		return
	}
	if !datePattern.MatchString(value) {
		errs.add(field, fmt.Sprintf("%s must be in YYYY-MM-DD format", field))
		return
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		errs.add(field, fmt.Sprintf("%s is not a valid date", field))
	}
}

func validateSort(errs *ValidationErrors, field string, sort *SortDTO, factors map[string]bool) {
	if sort == nil {
		return
	}
	if !factors[sort.Factor] {
		errs.add(field+".factor", fmt.Sprintf("unknown sort factor %q", sort.Factor))
	}
	if sort.Direction != "" && sort.Direction != "asc" && sort.Direction != "desc" {
		errs.add(field+".direction", "direction must be asc or desc")
	}
}

func validateMinuteRange(errs *ValidationErrors, field string, r *MinuteRangeDTO) {
	if r == nil {
		return
	}
	const lastMinute = 24*60 - 1
	if r.Start < 0 || r.Start > lastMinute {
		errs.add(field+".start", fmt.Sprintf("start must be between 0 and %d minutes", lastMinute))
	}
	if r.End < 0 || r.End > lastMinute {
		errs.add(field+".end", fmt.Sprintf("end must be between 0 and %d minutes", lastMinute))
	}
	if r.End < r.Start {
		errs.add(field, "end must not be before start")
	}
}

func validatePage(errs *ValidationErrors, page *PageDTO) {
	if page == nil {
		return
	}
	if page.Skip < 0 {
		errs.add("page.skip", "skip must not be negative")
	}
	if page.Take < 0 {
		errs.add("page.take", "take must not be negative")
	}
}
