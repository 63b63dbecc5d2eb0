package domain

import (
	"context"
	"math"
)

// City is a reference-data city served by the external reference layer.
type City struct {
	ID   uint    `json:"id"`
	Slug string  `json:"slug"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Airport is a reference-data airport.
type Airport struct {
	ID       uint    `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	CitySlug string  `json:"citySlug"`
	CityName string  `json:"cityName"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// AirlineCompany is a reference-data airline.
type AirlineCompany struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Airplane is a reference-data airplane model.
type Airplane struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Stay is a reference-data hotel.
type Stay struct {
	ID       uint    `json:"id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	CitySlug string  `json:"citySlug"`
	CityName string  `json:"cityName"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Rating   float64 `json:"rating"`
}

//go:generate mockgen -source=reference.go -destination=mock_reference.go -package=domain

// AirportSource provides read access to airport reference data.
// Implementations are expected to cache; the engine treats an empty result as
// a hard failure.
type AirportSource interface {
	// ListAll returns every known airport.
	ListAll(ctx context.Context) ([]Airport, error)

	// ListNear returns up to limit airports serving the given city.
	ListNear(ctx context.Context, citySlug string, limit int) ([]Airport, error)
}

// AirlineSource provides read access to airline reference data.
type AirlineSource interface {
	ListAll(ctx context.Context) ([]AirlineCompany, error)
}

// AirplaneSource provides read access to airplane reference data.
type AirplaneSource interface {
	ListAll(ctx context.Context) ([]Airplane, error)
}

// CitySource resolves cities by slug.
type CitySource interface {
	ListAll(ctx context.Context) ([]City, error)
	BySlug(ctx context.Context, slug string) (City, error)
}

// StaySource provides read access to stay (hotel) reference data.
type StaySource interface {
	// ListNear returns up to limit stays in the given city.
	ListNear(ctx context.Context, citySlug string, limit int) ([]Stay, error)
}

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two airports in
// kilometers, used for synthetic flight duration and pricing.
func DistanceKm(a, b Airport) float64 {
	return GeoDistanceKm(a.Lat, a.Lon, b.Lat, b.Lon)
}

// GeoDistanceKm returns the great-circle (haversine) distance between two
// coordinates in kilometers.
func GeoDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
