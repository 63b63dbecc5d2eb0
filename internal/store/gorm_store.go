package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/travel-offers/offer-search-engine/internal/domain"
)

// GormStore implements Store on a relational database through GORM. It relies
// on the connection being opened with TranslateError so unique violations
// surface as gorm.ErrDuplicatedKey regardless of the driver.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FlightIDsByHash implements Store.
func (s *GormStore) FlightIDsByHash(ctx context.Context, hashes []string) (map[string]uint, error) {
	var rows []flightRow
	if err := s.db.WithContext(ctx).Where("content_hash IN ?", hashes).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find flights by hash: %w", err)
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.ContentHash] = row.ID
	}
	return ids, nil
}

// CreateFlights implements Store. All rows are written in one transaction.
func (s *GormStore) CreateFlights(ctx context.Context, flights []*domain.Flight) (map[string]uint, error) {
	rows := make([]flightRow, 0, len(flights))
	for _, f := range flights {
		rows = append(rows, newFlightRow(f))
	}
	if err := s.createRows(ctx, &rows); err != nil {
		return nil, fmt.Errorf("create flights: %w", err)
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.ContentHash] = row.ID
	}
	return ids, nil
}

// FlightOfferIDsByHash implements Store.
func (s *GormStore) FlightOfferIDsByHash(ctx context.Context, hashes []string) (map[string]uint, error) {
	var rows []flightOfferRow
	if err := s.db.WithContext(ctx).Where("content_hash IN ?", hashes).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find flight offers by hash: %w", err)
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.ContentHash] = row.ID
	}
	return ids, nil
}

// CreateFlightOffers implements Store. Every offer must already reference
// durable flights.
func (s *GormStore) CreateFlightOffers(ctx context.Context, offers []*domain.FlightOffer) (map[string]uint, error) {
	rows := make([]flightOfferRow, 0, len(offers))
	for _, o := range offers {
		row, err := newFlightOfferRow(o)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := s.createRows(ctx, &rows); err != nil {
		return nil, fmt.Errorf("create flight offers: %w", err)
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.ContentHash] = row.ID
	}
	return ids, nil
}

// StayOfferIDsByHash implements Store.
func (s *GormStore) StayOfferIDsByHash(ctx context.Context, hashes []string) (map[string]uint, error) {
	var rows []stayOfferRow
	if err := s.db.WithContext(ctx).Where("content_hash IN ?", hashes).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find stay offers by hash: %w", err)
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.ContentHash] = row.ID
	}
	return ids, nil
}

// CreateStayOffers implements Store.
func (s *GormStore) CreateStayOffers(ctx context.Context, offers []*domain.StayOffer) (map[string]uint, error) {
	rows := make([]stayOfferRow, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, newStayOfferRow(o))
	}
	if err := s.createRows(ctx, &rows); err != nil {
		return nil, fmt.Errorf("create stay offers: %w", err)
	}
	ids := make(map[string]uint, len(rows))
	for _, row := range rows {
		ids[row.ContentHash] = row.ID
	}
	return ids, nil
}

// FavouriteOfferIDs implements Store.
func (s *GormStore) FavouriteOfferIDs(ctx context.Context, userID string, kind OfferKind, offerIDs []uint) (map[uint]bool, error) {
	if len(offerIDs) == 0 {
		return map[uint]bool{}, nil
	}
	var rows []favouriteRow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND offer_kind = ? AND offer_id IN ?", userID, string(kind), offerIDs).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("find favourites: %w", err)
	}
	flags := make(map[uint]bool, len(rows))
	for _, row := range rows {
		flags[row.OfferID] = row.IsFavourite
	}
	return flags, nil
}

// FavouriteState implements Store.
func (s *GormStore) FavouriteState(ctx context.Context, userID string, kind OfferKind, offerID uint) (FavouriteState, bool, error) {
	var row favouriteRow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND offer_kind = ? AND offer_id = ?", userID, string(kind), offerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return FavouriteState{}, false, nil
	}
	if err != nil {
		return FavouriteState{}, false, fmt.Errorf("read favourite: %w", err)
	}
	return FavouriteState{IsFavourite: row.IsFavourite, Version: row.Version}, true, nil
}

// WriteFavourite implements Store.
func (s *GormStore) WriteFavourite(ctx context.Context, userID string, kind OfferKind, offerID uint, state FavouriteState) error {
	if state.Version == 0 {
		row := favouriteRow{
			UserID:      userID,
			OfferKind:   string(kind),
			OfferID:     offerID,
			IsFavourite: state.IsFavourite,
			Version:     1,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("insert favourite: %w", domain.ErrDuplicateHash)
			}
			return fmt.Errorf("insert favourite: %w", err)
		}
		return nil
	}

	result := s.db.WithContext(ctx).Model(&favouriteRow{}).
		Where("user_id = ? AND offer_kind = ? AND offer_id = ? AND version = ?",
			userID, string(kind), offerID, state.Version).
		Updates(map[string]any{
			"is_favourite": state.IsFavourite,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return fmt.Errorf("update favourite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update favourite: %w", domain.ErrVersionConflict)
	}
	return nil
}

// createRows inserts one entity class atomically, translating a unique
// violation on any content hash into the domain conflict error.
func (s *GormStore) createRows(ctx context.Context, rows any) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rows).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateHash
	}
	return err
}

var _ Store = (*GormStore)(nil)
