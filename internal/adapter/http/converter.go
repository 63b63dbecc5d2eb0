// Package http provides the HTTP handler layer for the offer search API.
package http

import (
	"strings"
	"time"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/usecase"
)

// ToFlightSearchFilter converts a SearchFlightOffersRequest to the domain
// filter. Empty optional fields stay zero; the use case applies defaults.
func ToFlightSearchFilter(req *SearchFlightOffersRequest) domain.FlightSearchFilter {
	return domain.FlightSearchFilter{
		FromCitySlug:  strings.ToLower(req.FromCitySlug),
		ToCitySlug:    strings.ToLower(req.ToCitySlug),
		DepartDate:    parseDate(req.DepartDate),
		ReturnDate:    parseDate(req.ReturnDate),
		FlexibleDates: req.FlexibleDates,
		TripType:      domain.TripType(strings.ToLower(req.TripType)),
		Passengers:    req.Passengers,
		Class:         domain.ServiceClass(strings.ToLower(req.Class)),
	}
}

// ToFlightSearchOptions converts a SearchFlightOffersRequest to the per-call
// search options. Unset sort keys and page sizes fall back to the use case
// defaults.
func ToFlightSearchOptions(req *SearchFlightOffersRequest) usecase.FlightSearchOptions {
	opts := usecase.FlightSearchOptions{
		UserID:        req.UserID,
		Page:          toPage(req.Page),
		Filters:       toFlightFilterOptions(req.Filters),
		WithNarrowing: req.WithNarrowing,
		WithTopOffers: req.WithTopOffers,
	}
	if req.Sort != nil {
		opts.Primary = usecase.FlightSort{
			Factor:    domain.FlightSortFactor(strings.ToLower(req.Sort.Factor)),
			Direction: domain.SortDirection(strings.ToLower(req.Sort.Direction)),
		}
	}
	if req.SecondarySort != nil {
		opts.Secondary = usecase.FlightSort{
			Factor:    domain.FlightSortFactor(strings.ToLower(req.SecondarySort.Factor)),
			Direction: domain.SortDirection(strings.ToLower(req.SecondarySort.Direction)),
		}
	}
	return opts
}

// ToStaySearchFilter converts a SearchStayOffersRequest to the domain filter.
func ToStaySearchFilter(req *SearchStayOffersRequest) domain.StaySearchFilter {
	return domain.StaySearchFilter{
		CitySlug:      strings.ToLower(req.CitySlug),
		CheckIn:       parseDate(req.CheckIn),
		CheckOut:      parseDate(req.CheckOut),
		FlexibleDates: req.FlexibleDates,
		Guests:        req.Guests,
		Rooms:         req.Rooms,
	}
}

// ToStaySearchOptions converts a SearchStayOffersRequest to the per-call
// search options.
func ToStaySearchOptions(req *SearchStayOffersRequest) usecase.StaySearchOptions {
	opts := usecase.StaySearchOptions{
		UserID:        req.UserID,
		Page:          toPage(req.Page),
		Filters:       toStayFilterOptions(req.Filters),
		WithNarrowing: req.WithNarrowing,
	}
	if req.Sort != nil {
		opts.Sort = usecase.StaySort{
			Factor:    domain.StaySortFactor(strings.ToLower(req.Sort.Factor)),
			Direction: domain.SortDirection(strings.ToLower(req.Sort.Direction)),
		}
	}
	return opts
}

// parseDate parses a validated YYYY-MM-DD string. Returns nil for empty or
// unparseable input; request validation rejects malformed dates before
// conversion runs.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil
	}
	return &t
}

func toPage(dto *PageDTO) domain.Page {
	if dto == nil {
		return domain.Page{}
	}
	return domain.Page{Skip: dto.Skip, Take: dto.Take}
}

func toFlightFilterOptions(dto *FlightFiltersDTO) *domain.FlightFilterOptions {
	if dto == nil {
		return nil
	}
	opts := &domain.FlightFilterOptions{
		PriceMin:   dto.PriceMin,
		PriceMax:   dto.PriceMax,
		Ratings:    dto.Ratings,
		AirlineIDs: dto.AirlineIDs,
	}
	if dto.DepartureTimeOfDay != nil {
		opts.DepartureTimeOfDay = &domain.MinuteRange{
			Start: dto.DepartureTimeOfDay.Start,
			End:   dto.DepartureTimeOfDay.End,
		}
	}
	return opts
}

func toStayFilterOptions(dto *StayFiltersDTO) *domain.StayFilterOptions {
	if dto == nil {
		return nil
	}
	return &domain.StayFilterOptions{
		PriceMin: dto.PriceMin,
		PriceMax: dto.PriceMax,
		Ratings:  dto.Ratings,
	}
}
