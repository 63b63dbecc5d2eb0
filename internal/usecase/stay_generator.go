package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/hashing"
	"github.com/travel-offers/offer-search-engine/internal/pricing"
)

// StayGenerator expands a stay search filter into a bounded set of priced
// candidate offers: exactly one offer per (check-in, check-out, stay)
// combination.
type StayGenerator struct {
	cities domain.CitySource
	stays  domain.StaySource
	pricer *pricing.Engine
	cfg    GenerationConfig
}

// NewStayGenerator creates a StayGenerator with explicit collaborators.
func NewStayGenerator(cities domain.CitySource, stays domain.StaySource, pricer *pricing.Engine, cfg GenerationConfig) *StayGenerator {
	return &StayGenerator{
		cities: cities,
		stays:  stays,
		pricer: pricer,
		cfg:    cfg,
	}
}

// Generate produces the candidate offer set for the filter. It fails with a
// wrapped ErrRequiredDataMissing when the city has no stays.
func (g *StayGenerator) Generate(ctx context.Context, filter domain.StaySearchFilter, now time.Time) ([]*domain.StayOffer, error) {
	city, err := g.cities.BySlug(ctx, filter.CitySlug)
	if err != nil {
		return nil, fmt.Errorf("resolve city %q: %w", filter.CitySlug, err)
	}

	stays, err := g.stays.ListNear(ctx, city.Slug, g.cfg.NearbyStaysLimit)
	if err != nil {
		return nil, err
	}
	if len(stays) == 0 {
		return nil, domain.NewMissingDataError("stays")
	}

	checkIns := dateVariants(filter.CheckIn, now, filter.FlexibleDates, g.cfg.FlexibleDateWindowDays)

	out := newCollector[*domain.StayOffer](g.cfg.MaxCandidates)
	for _, checkIn := range checkIns {
		checkOut := g.checkOutFor(filter, checkIn)
		for i := range stays {
			offer := g.assembleOffer(city, stays[i], checkIn, checkOut, filter)
			if !out.add(offer.ContentHash(), offer) {
				return out.items, nil
			}
		}
	}
	return out.items, nil
}

// checkOutFor resolves the check-out date for one check-in variant: the
// explicit date when it still follows the check-in, the default stay length
// otherwise.
func (g *StayGenerator) checkOutFor(filter domain.StaySearchFilter, checkIn time.Time) time.Time {
	if filter.CheckOut != nil {
		checkOut := dayUTC(*filter.CheckOut)
		if checkOut.After(checkIn) {
			return checkOut
		}
	}
	return checkIn.AddDate(0, 0, g.cfg.DefaultStayNights)
}

func (g *StayGenerator) assembleOffer(city domain.City, stay domain.Stay, checkIn, checkOut time.Time, filter domain.StaySearchFilter) *domain.StayOffer {
	seed := strings.Join([]string{stay.Name, checkIn.Format("2006-01-02"), "level"}, "|")
	level := domain.StayServiceLevels[hashing.Pick(seed, len(domain.StayServiceLevels))]

	perNight := g.pricer.StayNight(city, stay, level)
	return &domain.StayOffer{
		Stay:       stay,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     filter.Guests,
		Rooms:      filter.Rooms,
		TotalPrice: perNight * filter.Rooms,
	}
}
