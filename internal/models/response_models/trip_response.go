package response_models

import "github.com/google/uuid"

type CreateTripResponse struct {
	TripID uuid.UUID `json:"tripId"`
}

type TripDetailResponse struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartAt     string    `json:"start_at"` // RFC3339
	EndsAt      string    `json:"ends_at"`  // RFC3339
	IsConfirmed bool      `json:"is_confirmed"`
}

// One mail dispatch result from the confirm-trip fan-out.
type DispatchOutcome struct {
	ParticipantID uuid.UUID `json:"participant_id"`
	Email         string    `json:"email"`
	Delivered     bool      `json:"delivered"`
	Error         string    `json:"error,omitempty"`
}

type ConfirmTripResponse struct {
	TripID   uuid.UUID         `json:"tripId"`
	Notified int               `json:"notified"`
	Failed   int               `json:"failed"`
	Outcomes []DispatchOutcome `json:"outcomes"`
}
