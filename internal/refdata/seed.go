package refdata

import (
	"fmt"

	"gorm.io/gorm"
)

// Seed populates the reference tables with the built-in dataset when they are
// empty, so the engine is searchable end-to-end on a fresh database. A
// non-empty city table is treated as already seeded.
func Seed(db *gorm.DB) error {
	var cities int64
	if err := db.Model(&cityRow{}).Count(&cities).Error; err != nil {
		return fmt.Errorf("count cities: %w", err)
	}
	if cities > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(seedCities()).Error; err != nil {
			return fmt.Errorf("seed cities: %w", err)
		}
		if err := tx.Create(seedAirports()).Error; err != nil {
			return fmt.Errorf("seed airports: %w", err)
		}
		if err := tx.Create(seedAirlines()).Error; err != nil {
			return fmt.Errorf("seed airlines: %w", err)
		}
		if err := tx.Create(seedAirplanes()).Error; err != nil {
			return fmt.Errorf("seed airplanes: %w", err)
		}
		if err := tx.Create(seedStays()).Error; err != nil {
			return fmt.Errorf("seed stays: %w", err)
		}
		return nil
	})
}

func seedCities() []cityRow {
	return []cityRow{
		{Slug: "new-york", Name: "New York", Lat: 40.7128, Lon: -74.0060},
		{Slug: "los-angeles", Name: "Los Angeles", Lat: 34.0522, Lon: -118.2437},
		{Slug: "chicago", Name: "Chicago", Lat: 41.8781, Lon: -87.6298},
		{Slug: "london", Name: "London", Lat: 51.5074, Lon: -0.1278},
		{Slug: "paris", Name: "Paris", Lat: 48.8566, Lon: 2.3522},
		{Slug: "amsterdam", Name: "Amsterdam", Lat: 52.3676, Lon: 4.9041},
		{Slug: "tokyo", Name: "Tokyo", Lat: 35.6762, Lon: 139.6503},
		{Slug: "singapore", Name: "Singapore", Lat: 1.3521, Lon: 103.8198},
	}
}

func seedAirports() []airportRow {
	return []airportRow{
		{Code: "JFK", Name: "John F. Kennedy International", CitySlug: "new-york", CityName: "New York", Lat: 40.6413, Lon: -73.7781},
		{Code: "EWR", Name: "Newark Liberty International", CitySlug: "new-york", CityName: "New York", Lat: 40.6895, Lon: -74.1745},
		{Code: "LAX", Name: "Los Angeles International", CitySlug: "los-angeles", CityName: "Los Angeles", Lat: 33.9416, Lon: -118.4085},
		{Code: "ORD", Name: "O'Hare International", CitySlug: "chicago", CityName: "Chicago", Lat: 41.9742, Lon: -87.9073},
		{Code: "LHR", Name: "Heathrow", CitySlug: "london", CityName: "London", Lat: 51.4700, Lon: -0.4543},
		{Code: "LGW", Name: "Gatwick", CitySlug: "london", CityName: "London", Lat: 51.1537, Lon: -0.1821},
		{Code: "CDG", Name: "Charles de Gaulle", CitySlug: "paris", CityName: "Paris", Lat: 49.0097, Lon: 2.5479},
		{Code: "ORY", Name: "Orly", CitySlug: "paris", CityName: "Paris", Lat: 48.7262, Lon: 2.3652},
		{Code: "AMS", Name: "Schiphol", CitySlug: "amsterdam", CityName: "Amsterdam", Lat: 52.3105, Lon: 4.7683},
		{Code: "HND", Name: "Haneda", CitySlug: "tokyo", CityName: "Tokyo", Lat: 35.5494, Lon: 139.7798},
		{Code: "NRT", Name: "Narita International", CitySlug: "tokyo", CityName: "Tokyo", Lat: 35.7720, Lon: 140.3929},
		{Code: "SIN", Name: "Changi", CitySlug: "singapore", CityName: "Singapore", Lat: 1.3644, Lon: 103.9915},
	}
}

func seedAirlines() []airlineRow {
	return []airlineRow{
		{Name: "Aurora Air", Rating: 4.2},
		{Name: "Pacific Wings", Rating: 3.8},
		{Name: "Skyline Express", Rating: 4.9},
		{Name: "Meridian Airways", Rating: 3.4},
		{Name: "Borealis Jet", Rating: 4.5},
	}
}

func seedAirplanes() []airplaneRow {
	return []airplaneRow{
		{Name: "A320neo"},
		{Name: "A350-900"},
		{Name: "B737 MAX 8"},
		{Name: "B787 Dreamliner"},
		{Name: "E195-E2"},
	}
}

func seedStays() []stayRow {
	return []stayRow{
		{Slug: "midtown-grand", Name: "Midtown Grand", CitySlug: "new-york", CityName: "New York", Lat: 40.7549, Lon: -73.9840, Rating: 4.3},
		{Slug: "hudson-view-inn", Name: "Hudson View Inn", CitySlug: "new-york", CityName: "New York", Lat: 40.7282, Lon: -74.0776, Rating: 3.7},
		{Slug: "sunset-palms", Name: "Sunset Palms", CitySlug: "los-angeles", CityName: "Los Angeles", Lat: 34.0983, Lon: -118.3267, Rating: 4.1},
		{Slug: "venice-shore-hotel", Name: "Venice Shore Hotel", CitySlug: "los-angeles", CityName: "Los Angeles", Lat: 33.9850, Lon: -118.4695, Rating: 4.6},
		{Slug: "lakefront-tower", Name: "Lakefront Tower", CitySlug: "chicago", CityName: "Chicago", Lat: 41.8919, Lon: -87.6051, Rating: 4.4},
		{Slug: "thames-court", Name: "Thames Court", CitySlug: "london", CityName: "London", Lat: 51.5080, Lon: -0.0877, Rating: 4.0},
		{Slug: "kensington-rose", Name: "Kensington Rose", CitySlug: "london", CityName: "London", Lat: 51.4991, Lon: -0.1938, Rating: 3.9},
		{Slug: "grand-lake-hotel", Name: "Grand Lake Hotel", CitySlug: "paris", CityName: "Paris", Lat: 48.8606, Lon: 2.3376, Rating: 4.6},
		{Slug: "riverside-inn", Name: "Riverside Inn", CitySlug: "paris", CityName: "Paris", Lat: 48.8530, Lon: 2.3499, Rating: 3.9},
		{Slug: "old-town-suites", Name: "Old Town Suites", CitySlug: "paris", CityName: "Paris", Lat: 48.8647, Lon: 2.3490, Rating: 4.1},
		{Slug: "canal-house", Name: "Canal House", CitySlug: "amsterdam", CityName: "Amsterdam", Lat: 52.3702, Lon: 4.8952, Rating: 4.5},
		{Slug: "shibuya-sky-hotel", Name: "Shibuya Sky Hotel", CitySlug: "tokyo", CityName: "Tokyo", Lat: 35.6580, Lon: 139.7016, Rating: 4.2},
		{Slug: "marina-bay-retreat", Name: "Marina Bay Retreat", CitySlug: "singapore", CityName: "Singapore", Lat: 1.2834, Lon: 103.8607, Rating: 4.8},
	}
}
