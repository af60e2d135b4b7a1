package controllers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planner/internal/api/controllers"
	"planner/internal/models/request_models"
	"planner/internal/models/response_models"
	"planner/internal/services"
	"planner/pkg/middleware"
)

// Function-field service doubles; set only the methods a test needs.

type mockTripService struct {
	createTrip     func(ctx context.Context, request request_models.CreateTripRequest) (uuid.UUID, error)
	getTripDetails func(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error)
	confirmTrip    func(ctx context.Context, tripId string) (*response_models.ConfirmTripResponse, error)
}

func (m *mockTripService) CreateTrip(ctx context.Context, request request_models.CreateTripRequest) (uuid.UUID, error) {
	return m.createTrip(ctx, request)
}
func (m *mockTripService) GetTripDetails(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	return m.getTripDetails(ctx, tripId)
}
func (m *mockTripService) ConfirmTrip(ctx context.Context, tripId string) (*response_models.ConfirmTripResponse, error) {
	return m.confirmTrip(ctx, tripId)
}

type mockParticipantService struct {
	inviteParticipant        func(ctx context.Context, tripId string, email string) (uuid.UUID, error)
	confirmParticipant       func(ctx context.Context, participantId string) error
	listParticipantsByTripId func(ctx context.Context, tripId string) ([]response_models.ParticipantResponse, error)
}

func (m *mockParticipantService) InviteParticipant(ctx context.Context, tripId string, email string) (uuid.UUID, error) {
	return m.inviteParticipant(ctx, tripId, email)
}
func (m *mockParticipantService) ConfirmParticipant(ctx context.Context, participantId string) error {
	return m.confirmParticipant(ctx, participantId)
}
func (m *mockParticipantService) ListParticipantsByTripId(ctx context.Context, tripId string) ([]response_models.ParticipantResponse, error) {
	return m.listParticipantsByTripId(ctx, tripId)
}

type mockActivityService struct {
	createActivity      func(ctx context.Context, tripId string, title string, occursAt time.Time) (uuid.UUID, error)
	listActivitiesByDay func(ctx context.Context, tripId string) ([]response_models.ActivityDayResponse, error)
}

func (m *mockActivityService) CreateActivity(ctx context.Context, tripId string, title string, occursAt time.Time) (uuid.UUID, error) {
	return m.createActivity(ctx, tripId, title, occursAt)
}
func (m *mockActivityService) ListActivitiesByDay(ctx context.Context, tripId string) ([]response_models.ActivityDayResponse, error) {
	return m.listActivitiesByDay(ctx, tripId)
}

var (
	_ services.TripServiceInterface        = (*mockTripService)(nil)
	_ services.ParticipantServiceInterface = (*mockParticipantService)(nil)
	_ services.ActivityServiceInterface    = (*mockActivityService)(nil)
)

// newRouter wires the mocked services through the same route table main.go uses.
func newRouter(trip services.TripServiceInterface,
	participant services.ParticipantServiceInterface,
	activity services.ActivityServiceInterface) *gin.Engine {

	gin.SetMode(gin.TestMode)

	tripController := controllers.NewTripController(trip)
	participantController := controllers.NewParticipantController(participant)
	activityController := controllers.NewActivityController(activity)

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripController.CreateTrip)
	tripsGroup.GET("/:tripId", tripController.GetTripDetails)
	tripsGroup.GET("/:tripId/confirm", tripController.ConfirmTrip)
	tripsGroup.POST("/:tripId/invites", participantController.InviteParticipant)
	tripsGroup.GET("/:tripId/participants", participantController.ListTripParticipants)
	tripsGroup.GET("/:tripId/activities", activityController.ListTripActivities)
	tripsGroup.POST("/:tripId/activities", activityController.CreateActivity)

	participantsGroup := r.Group("/participants")
	participantsGroup.GET("/:participantId/confirm", participantController.ConfirmParticipant)

	return r
}
