// internal/repositories/trip_repo.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "planner/internal/models/db_models"
)

type TripRepository interface {
	CreateTripWithParticipants(ctx context.Context, trip *dbm.Trip) (uuid.UUID, error)
	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)
	GetTripWithInvitees(ctx context.Context, tripId string) (*dbm.Trip, error)
	MarkTripConfirmed(ctx context.Context, tripId string) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// CreateTripWithParticipants inserts the trip row together with its owner and
// invitee participant rows in a single transaction, so a trip can never be
// observed without its owner.
func (r *tripRepository) CreateTripWithParticipants(ctx context.Context, trip *dbm.Trip) (uuid.UUID, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(trip).Error
	})
	if err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// GetTripWithInvitees loads the trip with its non-owner participants only,
// the audience of the confirm-trip notification fan-out.
func (r *tripRepository) GetTripWithInvitees(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Preload("Participants", "is_owner = ?", false).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// MarkTripConfirmed is idempotent: reapplying the flag is not an error.
func (r *tripRepository) MarkTripConfirmed(ctx context.Context, tripId string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripId).
		Update("is_confirmed", true).Error
}
