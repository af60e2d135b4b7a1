package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"planner/internal/models/db_models"
	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type ActivityServiceInterface interface {
	CreateActivity(ctx context.Context, tripId string, title string, occursAt time.Time) (uuid.UUID, error)
	ListActivitiesByDay(ctx context.Context, tripId string) ([]response_models.ActivityDayResponse, error)
}

type ActivityService struct {
	tripRepo     repositories.TripRepository
	activityRepo repositories.ActivityRepository
}

func NewActivityService(
	tripRepo repositories.TripRepository,
	activityRepo repositories.ActivityRepository) ActivityServiceInterface {

	return &ActivityService{
		tripRepo:     tripRepo,
		activityRepo: activityRepo,
	}
}

func (a *ActivityService) CreateActivity(ctx context.Context, tripId string, title string, occursAt time.Time) (uuid.UUID, error) {
	trip, err := a.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return uuid.Nil, utils.ErrTripNotFound
	}

	if occursAt.Before(trip.StartAt) || occursAt.After(trip.EndsAt) {
		return uuid.Nil, utils.ErrActivityOutsideTrip
	}

	activity := db_models.Activity{
		Title:    title,
		OccursAt: occursAt,
		TripID:   trip.ID,
	}
	activityId, err := a.activityRepo.CreateActivity(ctx, &activity)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return activityId, nil
}

// ListActivitiesByDay expands the trip's date range into one bucket per
// calendar day, inclusive of both endpoints, and assigns each activity to the
// bucket sharing its calendar day. Activities outside the range match no
// bucket and are not surfaced.
func (a *ActivityService) ListActivitiesByDay(ctx context.Context, tripId string) ([]response_models.ActivityDayResponse, error) {
	trip, err := a.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	activities, err := a.activityRepo.ListActivitiesByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	days := utils.DaysBetween(trip.StartAt, trip.EndsAt)

	out := make([]response_models.ActivityDayResponse, 0, days+1)
	for i := 0; i <= days; i++ {
		date := utils.AddDays(trip.StartAt, i)

		bucket := response_models.ActivityDayResponse{
			Date:       utils.FormatRFC3339(date),
			Activities: make([]response_models.ActivityResponse, 0),
		}
		for _, activity := range activities {
			if utils.SameDay(activity.OccursAt, date) {
				bucket.Activities = append(bucket.Activities, response_models.ActivityResponse{
					ID:       activity.ID,
					Title:    activity.Title,
					OccursAt: utils.FormatRFC3339(activity.OccursAt),
				})
			}
		}
		out = append(out, bucket)
	}
	return out, nil
}
