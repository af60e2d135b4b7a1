package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"planner/internal/models/db_models"
	"planner/internal/models/request_models"
	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, request request_models.CreateTripRequest) (uuid.UUID, error)
	GetTripDetails(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error)
	ConfirmTrip(ctx context.Context, tripId string) (*response_models.ConfirmTripResponse, error)
}

type TripService struct {
	tripRepo    repositories.TripRepository
	mailService IMailService
	now         func() time.Time
}

func NewTripService(tripRepo repositories.TripRepository, mailService IMailService) TripServiceInterface {
	return newTripService(tripRepo, mailService, time.Now)
}

// newTripService lets tests pin the clock the start-date rule is checked against.
func newTripService(tripRepo repositories.TripRepository, mailService IMailService, now func() time.Time) *TripService {
	return &TripService{
		tripRepo:    tripRepo,
		mailService: mailService,
		now:         now,
	}
}

func (t *TripService) CreateTrip(ctx context.Context, request request_models.CreateTripRequest) (uuid.UUID, error) {
	if request.StartAt.Before(t.now()) {
		return uuid.Nil, utils.ErrInvalidStartDate
	}
	if request.EndsAt.Before(request.StartAt) {
		return uuid.Nil, utils.ErrInvalidEndDate
	}

	participants := make([]db_models.Participant, 0, len(request.EmailsToInvite)+1)
	participants = append(participants, db_models.Participant{
		Name:        request.OwnerName,
		Email:       request.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range request.EmailsToInvite {
		participants = append(participants, db_models.Participant{Email: email})
	}

	trip := db_models.Trip{
		Destination:  request.Destination,
		StartAt:      request.StartAt,
		EndsAt:       request.EndsAt,
		Participants: participants,
	}

	tripId, err := t.tripRepo.CreateTripWithParticipants(ctx, &trip)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}

	// Notification is best effort: the trip is committed, a delivery failure
	// must not undo it.
	err = t.mailService.SendTripConfirmationMail(
		request.OwnerName, request.OwnerEmail,
		request.Destination, request.StartAt, request.EndsAt,
		tripId.String(),
	)
	if err != nil {
		log.Printf("Failed to send trip confirmation mail for trip %s: %v", tripId, err)
	}

	return tripId, nil
}

func (t *TripService) GetTripDetails(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	trip, err := t.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return &response_models.TripDetailResponse{
		ID:          trip.ID,
		Destination: trip.Destination,
		StartAt:     utils.FormatRFC3339(trip.StartAt),
		EndsAt:      utils.FormatRFC3339(trip.EndsAt),
		IsConfirmed: trip.IsConfirmed,
	}, nil
}

// ConfirmTrip flags the trip confirmed and notifies every invitee
// concurrently. Each dispatch outcome is reported back to the caller; a
// delivery failure never masks the confirmation itself.
func (t *TripService) ConfirmTrip(ctx context.Context, tripId string) (*response_models.ConfirmTripResponse, error) {
	trip, err := t.tripRepo.GetTripWithInvitees(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if err := t.tripRepo.MarkTripConfirmed(ctx, tripId); err != nil {
		return nil, utils.ErrDatabaseError
	}

	outcomes := make([]response_models.DispatchOutcome, len(trip.Participants))

	var g errgroup.Group
	for i, participant := range trip.Participants {
		g.Go(func() error {
			sendErr := t.mailService.SendParticipantConfirmationMail(
				participant.Email,
				trip.Destination, trip.StartAt, trip.EndsAt,
				participant.ID.String(),
			)

			outcomes[i] = response_models.DispatchOutcome{
				ParticipantID: participant.ID,
				Email:         participant.Email,
				Delivered:     sendErr == nil,
			}
			if sendErr != nil {
				outcomes[i].Error = sendErr.Error()
				log.Printf("Failed to send participant confirmation mail to %s: %v", participant.Email, sendErr)
			}
			return nil
		})
	}
	_ = g.Wait()

	response := &response_models.ConfirmTripResponse{
		TripID:   trip.ID,
		Outcomes: outcomes,
	}
	for _, outcome := range outcomes {
		if outcome.Delivered {
			response.Notified++
		} else {
			response.Failed++
		}
	}
	return response, nil
}
