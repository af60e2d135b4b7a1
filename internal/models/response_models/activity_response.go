package response_models

import "github.com/google/uuid"

type CreateActivityResponse struct {
	ActivityID uuid.UUID `json:"activityId"`
}

type ActivityResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	OccursAt string    `json:"occurs_at"` // RFC3339
}

// One calendar day of the trip with every activity occurring on it.
type ActivityDayResponse struct {
	Date       string             `json:"date"` // RFC3339
	Activities []ActivityResponse `json:"activities"`
}

type TripActivitiesResponse struct {
	Activities []ActivityDayResponse `json:"activities"`
}
