package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testStayOffer() *StayOffer {
	return &StayOffer{
		Stay:     Stay{ID: 5, Slug: "grand-lake-hotel", Name: "Grand Lake Hotel", Rating: 4.6},
		CheckIn:  time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 7, 13, 0, 0, 0, 0, time.UTC),
		Guests:   2,
		Rooms:    1,
	}
}

func TestStayOfferContentHash(t *testing.T) {
	base := testStayOffer()
	baseHash := base.ContentHash()

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, baseHash, testStayOffer().ContentHash())
	})

	t.Run("price and favourite flag do not participate", func(t *testing.T) {
		o := testStayOffer()
		o.TotalPrice = 999
		o.IsFavourite = true
		assert.Equal(t, baseHash, o.ContentHash())
	})

	t.Run("stay display fields do not participate", func(t *testing.T) {
		o := testStayOffer()
		o.Stay.Name = "Renamed Hotel"
		o.Stay.Rating = 2.0
		assert.Equal(t, baseHash, o.ContentHash())
	})

	tests := []struct {
		name   string
		mutate func(*StayOffer)
	}{
		{name: "stay id", mutate: func(o *StayOffer) { o.Stay.ID = 6 }},
		{name: "check-in date", mutate: func(o *StayOffer) { o.CheckIn = o.CheckIn.AddDate(0, 0, 1) }},
		{name: "check-out date", mutate: func(o *StayOffer) { o.CheckOut = o.CheckOut.AddDate(0, 0, 1) }},
		{name: "guest count", mutate: func(o *StayOffer) { o.Guests = 3 }},
		{name: "room count", mutate: func(o *StayOffer) { o.Rooms = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name+" participates in the hash", func(t *testing.T) {
			o := testStayOffer()
			tt.mutate(o)
			assert.NotEqual(t, baseHash, o.ContentHash())
		})
	}
}

func TestStayOfferNights(t *testing.T) {
	assert.Equal(t, 3, testStayOffer().Nights())

	single := testStayOffer()
	single.CheckOut = single.CheckIn.AddDate(0, 0, 1)
	assert.Equal(t, 1, single.Nights())
}
