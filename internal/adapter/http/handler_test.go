package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/travel-offers/offer-search-engine/internal/adapter/http/response"
	"github.com/travel-offers/offer-search-engine/internal/domain"
	"github.com/travel-offers/offer-search-engine/internal/infrastructure/retry"
	"github.com/travel-offers/offer-search-engine/internal/store"
	"github.com/travel-offers/offer-search-engine/internal/usecase"
)

func newTestServer(uc usecase.OfferSearchUseCase, st store.Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	favourites := store.NewFavourites(st, retry.Config{MaxRetries: 2, Multiplier: 1})
	RegisterRoutes(e, NewOfferHandler(uc, favourites))
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sampleFlightResult() *domain.FlightSearchResult {
	depart := &domain.Flight{
		ID:          domain.PersistedIdentity(7),
		Airline:     domain.AirlineCompany{ID: 1, Name: "Aurora Air", Rating: 4.2},
		Airplane:    domain.Airplane{ID: 2, Name: "A320neo"},
		Origin:      domain.Airport{ID: 3, Code: "JFK", Name: "John F. Kennedy International", CitySlug: "new-york", CityName: "New York"},
		Destination: domain.Airport{ID: 4, Code: "LAX", Name: "Los Angeles International", CitySlug: "los-angeles", CityName: "Los Angeles"},
		DepartAt:    time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		ArriveAt:    time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC),
	}
	offer := &domain.FlightOffer{
		ID:         domain.PersistedIdentity(42),
		Depart:     depart,
		Class:      domain.ClassEconomy,
		Passengers: 2,
		TotalPrice: 540,
	}
	return &domain.FlightSearchResult{
		Items: []*domain.FlightOffer{offer},
		Total: 18,
	}
}

func TestSearchFlightOffers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewMockOfferSearchUseCase(ctrl)
	uc.EXPECT().
		SearchFlightOffers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(sampleFlightResult(), nil)

	e := newTestServer(uc, store.NewMockStore(ctrl))
	rec := doJSON(t, e, http.MethodPost, "/api/v1/flights/search", SearchFlightOffersRequest{
		FromCitySlug: "new-york",
		ToCitySlug:   "los-angeles",
		DepartDate:   "2024-06-01",
		Passengers:   2,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp FlightSearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 18, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, uint(42), resp.Items[0].ID)
	assert.Len(t, resp.Items[0].Key, 8)
	assert.Equal(t, "economy", resp.Items[0].Class)
	assert.Equal(t, 540, resp.Items[0].TotalPrice)
	assert.Equal(t, 390, resp.Items[0].DurationMinutes)
	assert.Equal(t, "JFK", resp.Items[0].Depart.Origin.Code)
	assert.Nil(t, resp.Items[0].Return)
	assert.Nil(t, resp.Narrowing)
}

func TestSearchFlightOffers_ConvertsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := usecase.NewMockOfferSearchUseCase(ctrl)

	var gotFilter domain.FlightSearchFilter
	var gotOpts usecase.FlightSearchOptions
	uc.EXPECT().
		SearchFlightOffers(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter domain.FlightSearchFilter, opts usecase.FlightSearchOptions) (*domain.FlightSearchResult, error) {
			gotFilter = filter
			gotOpts = opts
			return &domain.FlightSearchResult{Items: []*domain.FlightOffer{}}, nil
		})

	priceMax := 900
	e := newTestServer(uc, store.NewMockStore(ctrl))
	rec := doJSON(t, e, http.MethodPost, "/api/v1/flights/search", SearchFlightOffersRequest{
		FromCitySlug:  "Paris",
		ToCitySlug:    "london",
		DepartDate:    "2024-06-01",
		ReturnDate:    "2024-06-08",
		FlexibleDates: true,
		TripType:      "Return",
		Passengers:    3,
		Class:         "Business",
		UserID:        "user-1",
		Sort:          &SortDTO{Factor: "duration", Direction: "asc"},
		Page:          &PageDTO{Skip: 40, Take: 10},
		Filters:       &FlightFiltersDTO{PriceMax: &priceMax, Ratings: []int{4}},
		WithNarrowing: true,
		WithTopOffers: true,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "paris", gotFilter.FromCitySlug)
	assert.Equal(t, "london", gotFilter.ToCitySlug)
	require.NotNil(t, gotFilter.DepartDate)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *gotFilter.DepartDate)
	require.NotNil(t, gotFilter.ReturnDate)
	assert.True(t, gotFilter.FlexibleDates)
	assert.Equal(t, domain.TripReturn, gotFilter.TripType)
	assert.Equal(t, 3, gotFilter.Passengers)
	assert.Equal(t, domain.ClassBusiness, gotFilter.Class)

	assert.Equal(t, "user-1", gotOpts.UserID)
	assert.Equal(t, domain.FlightSortDuration, gotOpts.Primary.Factor)
	assert.Equal(t, domain.SortAsc, gotOpts.Primary.Direction)
	assert.Equal(t, domain.Page{Skip: 40, Take: 10}, gotOpts.Page)
	require.NotNil(t, gotOpts.Filters)
	assert.Equal(t, 900, *gotOpts.Filters.PriceMax)
	assert.Equal(t, []int{4}, gotOpts.Filters.Ratings)
	assert.True(t, gotOpts.WithNarrowing)
	assert.True(t, gotOpts.WithTopOffers)
}

func TestSearchFlightOffers_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), store.NewMockStore(ctrl))

	rec := doJSON(t, e, http.MethodPost, "/api/v1/flights/search", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestSearchFlightOffers_RequestValidation(t *testing.T) {
	tests := []struct {
		name  string
		req   SearchFlightOffersRequest
		field string
	}{
		{
			name:  "bad date format",
			req:   SearchFlightOffersRequest{DepartDate: "01-06-2024"},
			field: "departDate",
		},
		{
			name:  "impossible date",
			req:   SearchFlightOffersRequest{DepartDate: "2024-13-41"},
			field: "departDate",
		},
		{
			name:  "unknown sort factor",
			req:   SearchFlightOffersRequest{Sort: &SortDTO{Factor: "altitude"}},
			field: "sort.factor",
		},
		{
			name:  "bad sort direction",
			req:   SearchFlightOffersRequest{Sort: &SortDTO{Factor: "price", Direction: "sideways"}},
			field: "sort.direction",
		},
		{
			name:  "negative skip",
			req:   SearchFlightOffersRequest{Page: &PageDTO{Skip: -1, Take: 10}},
			field: "page.skip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), store.NewMockStore(ctrl))

			rec := doJSON(t, e, http.MethodPost, "/api/v1/flights/search", tt.req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Details, tt.field)
		})
	}
}

func TestSearchFlightOffers_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "domain validation",
			err:      domain.ErrInvalidRequest,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing reference data",
			err:      domain.NewMissingDataError("airports"),
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			wantCode: http.StatusGatewayTimeout,
		},
		{
			name:     "cancelled",
			err:      context.Canceled,
			wantCode: http.StatusGatewayTimeout,
		},
		{
			name:     "unexpected failure",
			err:      assert.AnError,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := usecase.NewMockOfferSearchUseCase(ctrl)
			uc.EXPECT().
				SearchFlightOffers(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			e := newTestServer(uc, store.NewMockStore(ctrl))
			rec := doJSON(t, e, http.MethodPost, "/api/v1/flights/search", SearchFlightOffersRequest{})

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestSearchStayOffers_Success(t *testing.T) {
	checkIn := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	result := &domain.StaySearchResult{
		Items: []*domain.StayOffer{
			{
				ID: domain.PersistedIdentity(9),
				Stay: domain.Stay{
					ID:       5,
					Slug:     "grand-lake-hotel",
					Name:     "Grand Lake Hotel",
					CitySlug: "paris",
					CityName: "Paris",
					Rating:   4.6,
				},
				CheckIn:    checkIn,
				CheckOut:   checkIn.AddDate(0, 0, 3),
				Guests:     2,
				Rooms:      1,
				TotalPrice: 260,
			},
		},
		Total:     11,
		Narrowing: &domain.StayNarrowing{PriceMin: 90, PriceMax: 410},
	}

	ctrl := gomock.NewController(t)
	uc := usecase.NewMockOfferSearchUseCase(ctrl)
	uc.EXPECT().
		SearchStayOffers(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(result, nil)

	e := newTestServer(uc, store.NewMockStore(ctrl))
	rec := doJSON(t, e, http.MethodPost, "/api/v1/stays/search", SearchStayOffersRequest{
		CitySlug:      "paris",
		CheckIn:       "2024-07-01",
		Guests:        2,
		WithNarrowing: true,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp StaySearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, uint(9), resp.Items[0].ID)
	assert.Equal(t, "grand-lake-hotel", resp.Items[0].Stay.Slug)
	assert.Equal(t, "2024-07-01", resp.Items[0].CheckIn)
	assert.Equal(t, "2024-07-04", resp.Items[0].CheckOut)
	assert.Equal(t, 3, resp.Items[0].Nights)
	require.NotNil(t, resp.Narrowing)
	assert.Equal(t, 90, resp.Narrowing.PriceMin)
	assert.Equal(t, 410, resp.Narrowing.PriceMax)
}

func TestSearchStayOffers_RequestValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), store.NewMockStore(ctrl))

	rec := doJSON(t, e, http.MethodPost, "/api/v1/stays/search", SearchStayOffersRequest{
		CitySlug: "paris",
		CheckIn:  "july 1st",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "checkIn")
}

func TestToggleFavourite_FirstToggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := store.NewMockStore(ctrl)
	st.EXPECT().
		FavouriteState(gomock.Any(), "user-1", store.OfferKindFlight, uint(42)).
		Return(store.FavouriteState{}, false, nil)
	st.EXPECT().
		WriteFavourite(gomock.Any(), "user-1", store.OfferKindFlight, uint(42), store.FavouriteState{IsFavourite: true, Version: 0}).
		Return(nil)

	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), st)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/offers/flight/42/favourite", ToggleFavouriteRequest{UserID: "user-1"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ToggleFavouriteResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(42), resp.OfferID)
	assert.Equal(t, "flight", resp.Kind)
	assert.True(t, resp.IsFavourite)
}

func TestToggleFavourite_BadOfferID(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), store.NewMockStore(ctrl))

	rec := doJSON(t, e, http.MethodPost, "/api/v1/offers/flight/not-a-number/favourite", ToggleFavouriteRequest{UserID: "user-1"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleFavourite_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), store.NewMockStore(ctrl))

	rec := doJSON(t, e, http.MethodPost, "/api/v1/offers/cruise/42/favourite", ToggleFavouriteRequest{UserID: "user-1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Contains(t, detail.Message, "cruise")
}

func TestToggleFavourite_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), store.NewMockStore(ctrl))

	rec := doJSON(t, e, http.MethodPost, "/api/v1/offers/flight/42/favourite", ToggleFavouriteRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleFavourite_PersistentConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := store.NewMockStore(ctrl)
	st.EXPECT().
		FavouriteState(gomock.Any(), "user-1", store.OfferKindStay, uint(9)).
		Return(store.FavouriteState{IsFavourite: false, Version: 1}, true, nil).
		AnyTimes()
	st.EXPECT().
		WriteFavourite(gomock.Any(), "user-1", store.OfferKindStay, uint(9), gomock.Any()).
		Return(domain.ErrVersionConflict).
		AnyTimes()

	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), st)
	rec := doJSON(t, e, http.MethodPost, "/api/v1/offers/stay/9/favourite", ToggleFavouriteRequest{UserID: "user-1"})

	require.Equal(t, http.StatusConflict, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeConflict, detail.Code)
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(usecase.NewMockOfferSearchUseCase(ctrl), store.NewMockStore(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
