// Package refdata serves the reference datasets the offer engine generates
// from: cities, airports, airline companies, airplanes and stays. Rows live
// in relational tables and reads go through an optional redis cache.
package refdata

import (
	"time"

	"gorm.io/gorm"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

type cityRow struct {
	ID        uint   `gorm:"primaryKey"`
	Slug      string `gorm:"uniqueIndex;size:64"`
	Name      string
	Lat       float64
	Lon       float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cityRow) TableName() string {
	return "ref_cities"
}

type airportRow struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"uniqueIndex;size:8"`
	Name      string
	CitySlug  string `gorm:"index;size:64"`
	CityName  string
	Lat       float64
	Lon       float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (airportRow) TableName() string {
	return "ref_airports"
}

type airlineRow struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:128"`
	Rating    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (airlineRow) TableName() string {
	return "ref_airline_companies"
}

type airplaneRow struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:128"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (airplaneRow) TableName() string {
	return "ref_airplanes"
}

type stayRow struct {
	ID        uint   `gorm:"primaryKey"`
	Slug      string `gorm:"uniqueIndex;size:128"`
	Name      string
	CitySlug  string `gorm:"index;size:64"`
	CityName  string
	Lat       float64
	Lon       float64
	Rating    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (stayRow) TableName() string {
	return "ref_stays"
}

// AutoMigrate creates or updates the reference tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&cityRow{}, &airportRow{}, &airlineRow{}, &airplaneRow{}, &stayRow{})
}

func (r cityRow) toDomain() domain.City {
	return domain.City{ID: r.ID, Slug: r.Slug, Name: r.Name, Lat: r.Lat, Lon: r.Lon}
}

func (r airportRow) toDomain() domain.Airport {
	return domain.Airport{
		ID:       r.ID,
		Code:     r.Code,
		Name:     r.Name,
		CitySlug: r.CitySlug,
		CityName: r.CityName,
		Lat:      r.Lat,
		Lon:      r.Lon,
	}
}

func (r airlineRow) toDomain() domain.AirlineCompany {
	return domain.AirlineCompany{ID: r.ID, Name: r.Name, Rating: r.Rating}
}

func (r airplaneRow) toDomain() domain.Airplane {
	return domain.Airplane{ID: r.ID, Name: r.Name}
}

func (r stayRow) toDomain() domain.Stay {
	return domain.Stay{
		ID:       r.ID,
		Slug:     r.Slug,
		Name:     r.Name,
		CitySlug: r.CitySlug,
		CityName: r.CityName,
		Lat:      r.Lat,
		Lon:      r.Lon,
		Rating:   r.Rating,
	}
}
