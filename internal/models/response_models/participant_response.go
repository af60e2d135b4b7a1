package response_models

import "github.com/google/uuid"

type InviteParticipantResponse struct {
	ParticipantID uuid.UUID `json:"participantId"`
}

type ParticipantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name,omitempty"`
	Email       string    `json:"email"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
}
