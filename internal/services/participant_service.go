package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"planner/internal/models/db_models"
	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type ParticipantServiceInterface interface {
	InviteParticipant(ctx context.Context, tripId string, email string) (uuid.UUID, error)
	ConfirmParticipant(ctx context.Context, participantId string) error
	ListParticipantsByTripId(ctx context.Context, tripId string) ([]response_models.ParticipantResponse, error)
}

type ParticipantService struct {
	tripRepo        repositories.TripRepository
	participantRepo repositories.ParticipantRepository
	mailService     IMailService
}

func NewParticipantService(
	tripRepo repositories.TripRepository,
	participantRepo repositories.ParticipantRepository,
	mailService IMailService) ParticipantServiceInterface {

	return &ParticipantService{
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		mailService:     mailService,
	}
}

// InviteParticipant adds an unconfirmed participant to the trip and mails
// them a confirmation link. Inviting the same address twice creates two
// participant records; there is no dedup check.
func (p *ParticipantService) InviteParticipant(ctx context.Context, tripId string, email string) (uuid.UUID, error) {
	trip, err := p.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return uuid.Nil, utils.ErrTripNotFound
	}

	participant := db_models.Participant{
		Email:  email,
		TripID: trip.ID,
	}
	participantId, err := p.participantRepo.CreateParticipant(ctx, &participant)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	err = p.mailService.SendParticipantConfirmationMail(
		email, trip.Destination, trip.StartAt, trip.EndsAt, participantId.String())
	if err != nil {
		log.Printf("Failed to send invitation mail to %s: %v", email, err)
	}

	return participantId, nil
}

// ConfirmParticipant is idempotent; confirming twice just reapplies the flag.
func (p *ParticipantService) ConfirmParticipant(ctx context.Context, participantId string) error {
	participant, err := p.participantRepo.GetParticipantById(ctx, participantId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if participant == nil {
		return utils.ErrParticipantNotFound
	}

	if err := p.participantRepo.MarkParticipantConfirmed(ctx, participantId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *ParticipantService) ListParticipantsByTripId(ctx context.Context, tripId string) ([]response_models.ParticipantResponse, error) {
	trip, err := p.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	participants, err := p.participantRepo.ListParticipantsByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ParticipantResponse, 0, len(participants))
	for _, participant := range participants {
		out = append(out, response_models.ParticipantResponse{
			ID:          participant.ID,
			Name:        participant.Name,
			Email:       participant.Email,
			IsOwner:     participant.IsOwner,
			IsConfirmed: participant.IsConfirmed,
		})
	}
	return out, nil
}
