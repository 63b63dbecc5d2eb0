package refdata

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

// Cities is the database-backed domain.CitySource.
type Cities struct {
	db *gorm.DB
}

// NewCities creates a new database-backed city source.
func NewCities(db *gorm.DB) *Cities {
	return &Cities{db: db}
}

// ListAll implements domain.CitySource.
func (c *Cities) ListAll(ctx context.Context) ([]domain.City, error) {
	var rows []cityRow
	if err := c.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	cities := make([]domain.City, 0, len(rows))
	for _, row := range rows {
		cities = append(cities, row.toDomain())
	}
	return cities, nil
}

// BySlug implements domain.CitySource. An unknown slug reports the cities
// dataset as missing so the search call fails rather than returning an empty
// result.
func (c *Cities) BySlug(ctx context.Context, slug string) (domain.City, error) {
	var row cityRow
	err := c.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.City{}, fmt.Errorf("city %q: %w", slug, domain.NewMissingDataError("cities"))
	}
	if err != nil {
		return domain.City{}, fmt.Errorf("find city %q: %w", slug, err)
	}
	return row.toDomain(), nil
}

// Airports is the database-backed domain.AirportSource.
type Airports struct {
	db *gorm.DB
}

// NewAirports creates a new database-backed airport source.
func NewAirports(db *gorm.DB) *Airports {
	return &Airports{db: db}
}

// ListAll implements domain.AirportSource.
func (a *Airports) ListAll(ctx context.Context) ([]domain.Airport, error) {
	var rows []airportRow
	if err := a.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list airports: %w", err)
	}
	airports := make([]domain.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, row.toDomain())
	}
	return airports, nil
}

// ListNear implements domain.AirportSource: the airports closest to the
// city's coordinates, in-city airports first. Reference data is small, so the
// distance sort runs in memory.
func (a *Airports) ListNear(ctx context.Context, citySlug string, limit int) ([]domain.Airport, error) {
	var city cityRow
	err := a.db.WithContext(ctx).Where("slug = ?", citySlug).First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("city %q: %w", citySlug, domain.NewMissingDataError("cities"))
	}
	if err != nil {
		return nil, fmt.Errorf("find city %q: %w", citySlug, err)
	}

	airports, err := a.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(airports, func(i, j int) bool {
		inCityI, inCityJ := airports[i].CitySlug == citySlug, airports[j].CitySlug == citySlug
		if inCityI != inCityJ {
			return inCityI
		}
		di := domain.GeoDistanceKm(city.Lat, city.Lon, airports[i].Lat, airports[i].Lon)
		dj := domain.GeoDistanceKm(city.Lat, city.Lon, airports[j].Lat, airports[j].Lon)
		return di < dj
	})

	if limit > 0 && len(airports) > limit {
		airports = airports[:limit]
	}
	return airports, nil
}

// Airlines is the database-backed domain.AirlineSource.
type Airlines struct {
	db *gorm.DB
}

// NewAirlines creates a new database-backed airline source.
func NewAirlines(db *gorm.DB) *Airlines {
	return &Airlines{db: db}
}

// ListAll implements domain.AirlineSource.
func (a *Airlines) ListAll(ctx context.Context) ([]domain.AirlineCompany, error) {
	var rows []airlineRow
	if err := a.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list airlines: %w", err)
	}
	airlines := make([]domain.AirlineCompany, 0, len(rows))
	for _, row := range rows {
		airlines = append(airlines, row.toDomain())
	}
	return airlines, nil
}

// Airplanes is the database-backed domain.AirplaneSource.
type Airplanes struct {
	db *gorm.DB
}

// NewAirplanes creates a new database-backed airplane source.
func NewAirplanes(db *gorm.DB) *Airplanes {
	return &Airplanes{db: db}
}

// ListAll implements domain.AirplaneSource.
func (a *Airplanes) ListAll(ctx context.Context) ([]domain.Airplane, error) {
	var rows []airplaneRow
	if err := a.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list airplanes: %w", err)
	}
	airplanes := make([]domain.Airplane, 0, len(rows))
	for _, row := range rows {
		airplanes = append(airplanes, row.toDomain())
	}
	return airplanes, nil
}

// Stays is the database-backed domain.StaySource.
type Stays struct {
	db *gorm.DB
}

// NewStays creates a new database-backed stay source.
func NewStays(db *gorm.DB) *Stays {
	return &Stays{db: db}
}

// ListNear implements domain.StaySource: the stays located in the city, in
// stable id order.
func (s *Stays) ListNear(ctx context.Context, citySlug string, limit int) ([]domain.Stay, error) {
	query := s.db.WithContext(ctx).Where("city_slug = ?", citySlug).Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []stayRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list stays near %q: %w", citySlug, err)
	}
	stays := make([]domain.Stay, 0, len(rows))
	for _, row := range rows {
		stays = append(stays, row.toDomain())
	}
	return stays, nil
}

var (
	_ domain.CitySource     = (*Cities)(nil)
	_ domain.AirportSource  = (*Airports)(nil)
	_ domain.AirlineSource  = (*Airlines)(nil)
	_ domain.AirplaneSource = (*Airplanes)(nil)
	_ domain.StaySource     = (*Stays)(nil)
)
