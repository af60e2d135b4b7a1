package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "planner/internal/models/db_models"
)

type ParticipantRepository interface {
	CreateParticipant(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error)
	GetParticipantById(ctx context.Context, participantId string) (*dbm.Participant, error)
	ListParticipantsByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error)
	MarkParticipantConfirmed(ctx context.Context, participantId string) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) CreateParticipant(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(participant).Error; err != nil {
		return uuid.Nil, err
	}
	return participant.ID, nil
}

func (r *participantRepository) GetParticipantById(ctx context.Context, participantId string) (*dbm.Participant, error) {
	var participant dbm.Participant
	err := r.db.WithContext(ctx).
		Where("id = ?", participantId).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *participantRepository) ListParticipantsByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error) {
	var participants []dbm.Participant
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("created_at ASC").
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) MarkParticipantConfirmed(ctx context.Context, participantId string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Participant{}).
		Where("id = ?", participantId).
		Update("is_confirmed", true).Error
}
