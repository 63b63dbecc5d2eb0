package http

import (
	"time"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/store"
)

// FlightSearchResponseDTO is the data transfer object for flight search
// responses. It matches the expected API output format with snake_case fields.
type FlightSearchResponseDTO struct {
	Items     []FlightOfferDTO    `json:"items"`
	Total     int                 `json:"total"`
	Narrowing *FlightNarrowingDTO `json:"narrowing,omitempty"`
	TopOffers []TopOfferDTO       `json:"top_offers,omitempty"`
}

// StaySearchResponseDTO is the data transfer object for stay search responses.
type StaySearchResponseDTO struct {
	Items     []StayOfferDTO    `json:"items"`
	Total     int               `json:"total"`
	Narrowing *StayNarrowingDTO `json:"narrowing,omitempty"`
}

// FlightOfferDTO is the data transfer object for a single flight offer.
type FlightOfferDTO struct {
	ID              uint       `json:"id"`
	Key             string     `json:"key"`
	Depart          FlightDTO  `json:"depart"`
	Return          *FlightDTO `json:"return,omitempty"`
	Class           string     `json:"class"`
	Passengers      int        `json:"passengers"`
	TotalPrice      int        `json:"total_price"`
	DurationMinutes int        `json:"duration_minutes"`
	IsFavourite     bool       `json:"is_favourite"`
}

// FlightDTO is the data transfer object for one flight leg.
type FlightDTO struct {
	ID              uint        `json:"id"`
	Airline         AirlineDTO  `json:"airline"`
	Airplane        AirplaneDTO `json:"airplane"`
	Origin          AirportDTO  `json:"origin"`
	Destination     AirportDTO  `json:"destination"`
	DepartAt        time.Time   `json:"depart_at"`
	ArriveAt        time.Time   `json:"arrive_at"`
	DurationMinutes int         `json:"duration_minutes"`
}

// AirlineDTO is the data transfer object for an airline company.
type AirlineDTO struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// AirplaneDTO is the data transfer object for an airplane model.
type AirplaneDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AirportDTO is the data transfer object for an airport.
type AirportDTO struct {
	ID       uint   `json:"id"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	CitySlug string `json:"city_slug"`
	CityName string `json:"city_name"`
}

// StayOfferDTO is the data transfer object for a single stay offer.
type StayOfferDTO struct {
	ID          uint    `json:"id"`
	Key         string  `json:"key"`
	Stay        StayDTO `json:"stay"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Nights      int     `json:"nights"`
	Guests      int     `json:"guests"`
	Rooms       int     `json:"rooms"`
	TotalPrice  int     `json:"total_price"`
	IsFavourite bool    `json:"is_favourite"`
}

// StayDTO is the data transfer object for a hotel.
type StayDTO struct {
	ID       uint    `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	CitySlug string  `json:"city_slug"`
	CityName string  `json:"city_name"`
	Rating   float64 `json:"rating"`
}

// FlightNarrowingDTO carries the filterable value ranges of the full
// candidate set.
type FlightNarrowingDTO struct {
	PriceMin int          `json:"price_min"`
	PriceMax int          `json:"price_max"`
	Airlines []AirlineDTO `json:"airlines"`
}

// StayNarrowingDTO carries the price range of the full candidate set.
type StayNarrowingDTO struct {
	PriceMin int `json:"price_min"`
	PriceMax int `json:"price_max"`
}

// TopOfferDTO is one per-sort-factor price highlight.
type TopOfferDTO struct {
	Factor string `json:"factor"`
	Price  int    `json:"price"`
}

// ToggleFavouriteResponseDTO is the data transfer object for favourite
// toggles.
type ToggleFavouriteResponseDTO struct {
	OfferID     uint   `json:"offer_id"`
	Kind        string `json:"kind"`
	IsFavourite bool   `json:"is_favourite"`
}

// ToFlightSearchResponseDTO converts a domain flight search result to its
// response DTO.
func ToFlightSearchResponseDTO(result *domain.FlightSearchResult) *FlightSearchResponseDTO {
	items := make([]FlightOfferDTO, 0, len(result.Items))
	for _, offer := range result.Items {
		items = append(items, toFlightOfferDTO(offer))
	}

	dto := &FlightSearchResponseDTO{
		Items: items,
		Total: result.Total,
	}
	if result.Narrowing != nil {
		dto.Narrowing = &FlightNarrowingDTO{
			PriceMin: result.Narrowing.PriceMin,
			PriceMax: result.Narrowing.PriceMax,
			Airlines: toAirlineDTOs(result.Narrowing.Airlines),
		}
	}
	for _, top := range result.TopOffers {
		dto.TopOffers = append(dto.TopOffers, TopOfferDTO{
			Factor: string(top.Factor),
			Price:  top.Price,
		})
	}
	return dto
}

// ToStaySearchResponseDTO converts a domain stay search result to its
// response DTO.
func ToStaySearchResponseDTO(result *domain.StaySearchResult) *StaySearchResponseDTO {
	items := make([]StayOfferDTO, 0, len(result.Items))
	for _, offer := range result.Items {
		items = append(items, toStayOfferDTO(offer))
	}

	dto := &StaySearchResponseDTO{
		Items: items,
		Total: result.Total,
	}
	if result.Narrowing != nil {
		dto.Narrowing = &StayNarrowingDTO{
			PriceMin: result.Narrowing.PriceMin,
			PriceMax: result.Narrowing.PriceMax,
		}
	}
	return dto
}

func toFlightOfferDTO(offer *domain.FlightOffer) FlightOfferDTO {
	id, _ := offer.ID.Value()
	dto := FlightOfferDTO{
		ID:              id,
		Key:             store.HashKey(offer.ContentHash()),
		Depart:          toFlightDTO(offer.Depart),
		Class:           string(offer.Class),
		Passengers:      offer.Passengers,
		TotalPrice:      offer.TotalPrice,
		DurationMinutes: offer.DurationMinutes(),
		IsFavourite:     offer.IsFavourite,
	}
	if offer.Return != nil {
		ret := toFlightDTO(offer.Return)
		dto.Return = &ret
	}
	return dto
}

func toFlightDTO(f *domain.Flight) FlightDTO {
	id, _ := f.ID.Value()
	return FlightDTO{
		ID: id,
		Airline: AirlineDTO{
			ID:     f.Airline.ID,
			Name:   f.Airline.Name,
			Rating: f.Airline.Rating,
		},
		Airplane: AirplaneDTO{
			ID:   f.Airplane.ID,
			Name: f.Airplane.Name,
		},
		Origin:          toAirportDTO(f.Origin),
		Destination:     toAirportDTO(f.Destination),
		DepartAt:        f.DepartAt,
		ArriveAt:        f.ArriveAt,
		DurationMinutes: f.DurationMinutes(),
	}
}

func toAirportDTO(a domain.Airport) AirportDTO {
	return AirportDTO{
		ID:       a.ID,
		Code:     a.Code,
		Name:     a.Name,
		CitySlug: a.CitySlug,
		CityName: a.CityName,
	}
}

func toAirlineDTOs(airlines []domain.AirlineCompany) []AirlineDTO {
	dtos := make([]AirlineDTO, 0, len(airlines))
	for _, a := range airlines {
		dtos = append(dtos, AirlineDTO{ID: a.ID, Name: a.Name, Rating: a.Rating})
	}
	return dtos
}

func toStayOfferDTO(offer *domain.StayOffer) StayOfferDTO {
	id, _ := offer.ID.Value()
	return StayOfferDTO{
		ID:  id,
		Key: store.HashKey(offer.ContentHash()),
		Stay: StayDTO{
			ID:       offer.Stay.ID,
			Slug:     offer.Stay.Slug,
			Name:     offer.Stay.Name,
			CitySlug: offer.Stay.CitySlug,
			CityName: offer.Stay.CityName,
			Rating:   offer.Stay.Rating,
		},
		CheckIn:     offer.CheckIn.UTC().Format(dateLayout),
		CheckOut:    offer.CheckOut.UTC().Format(dateLayout),
		Nights:      offer.Nights(),
		Guests:      offer.Guests,
		Rooms:       offer.Rooms,
		TotalPrice:  offer.TotalPrice,
		IsFavourite: offer.IsFavourite,
	}
}
