package services_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	dbm "planner/internal/models/db_models"
	"planner/internal/repositories"
	"planner/internal/services"
)

var (
	_ repositories.TripRepository        = (*mockTripRepo)(nil)
	_ repositories.ParticipantRepository = (*mockParticipantRepo)(nil)
	_ repositories.ActivityRepository    = (*mockActivityRepo)(nil)
	_ services.IMailService              = (*mockMailService)(nil)
)

// Function-field test doubles; set only the methods a test needs.

type mockTripRepo struct {
	createTripWithParticipants func(ctx context.Context, trip *dbm.Trip) (uuid.UUID, error)
	getTripById                func(ctx context.Context, tripId string) (*dbm.Trip, error)
	getTripWithInvitees        func(ctx context.Context, tripId string) (*dbm.Trip, error)
	markTripConfirmed          func(ctx context.Context, tripId string) error
}

func (m *mockTripRepo) CreateTripWithParticipants(ctx context.Context, trip *dbm.Trip) (uuid.UUID, error) {
	return m.createTripWithParticipants(ctx, trip)
}
func (m *mockTripRepo) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	return m.getTripById(ctx, tripId)
}
func (m *mockTripRepo) GetTripWithInvitees(ctx context.Context, tripId string) (*dbm.Trip, error) {
	return m.getTripWithInvitees(ctx, tripId)
}
func (m *mockTripRepo) MarkTripConfirmed(ctx context.Context, tripId string) error {
	return m.markTripConfirmed(ctx, tripId)
}

type mockParticipantRepo struct {
	createParticipant        func(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error)
	getParticipantById       func(ctx context.Context, participantId string) (*dbm.Participant, error)
	listParticipantsByTripId func(ctx context.Context, tripId string) ([]dbm.Participant, error)
	markParticipantConfirmed func(ctx context.Context, participantId string) error
}

func (m *mockParticipantRepo) CreateParticipant(ctx context.Context, participant *dbm.Participant) (uuid.UUID, error) {
	return m.createParticipant(ctx, participant)
}
func (m *mockParticipantRepo) GetParticipantById(ctx context.Context, participantId string) (*dbm.Participant, error) {
	return m.getParticipantById(ctx, participantId)
}
func (m *mockParticipantRepo) ListParticipantsByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error) {
	return m.listParticipantsByTripId(ctx, tripId)
}
func (m *mockParticipantRepo) MarkParticipantConfirmed(ctx context.Context, participantId string) error {
	return m.markParticipantConfirmed(ctx, participantId)
}

type mockActivityRepo struct {
	createActivity         func(ctx context.Context, activity *dbm.Activity) (uuid.UUID, error)
	listActivitiesByTripId func(ctx context.Context, tripId string) ([]dbm.Activity, error)
}

func (m *mockActivityRepo) CreateActivity(ctx context.Context, activity *dbm.Activity) (uuid.UUID, error) {
	return m.createActivity(ctx, activity)
}
func (m *mockActivityRepo) ListActivitiesByTripId(ctx context.Context, tripId string) ([]dbm.Activity, error) {
	return m.listActivitiesByTripId(ctx, tripId)
}

type mockMailService struct {
	sendTripConfirmation        func(toName, toEmail, destination string, startAt, endsAt time.Time, tripId string) error
	sendParticipantConfirmation func(toEmail, destination string, startAt, endsAt time.Time, participantId string) error
}

func (m *mockMailService) SendTripConfirmationMail(toName, toEmail, destination string, startAt, endsAt time.Time, tripId string) error {
	if m.sendTripConfirmation == nil {
		return nil
	}
	return m.sendTripConfirmation(toName, toEmail, destination, startAt, endsAt, tripId)
}
func (m *mockMailService) SendParticipantConfirmationMail(toEmail, destination string, startAt, endsAt time.Time, participantId string) error {
	if m.sendParticipantConfirmation == nil {
		return nil
	}
	return m.sendParticipantConfirmation(toEmail, destination, startAt, endsAt, participantId)
}
