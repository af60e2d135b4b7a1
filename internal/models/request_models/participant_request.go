package request_models

type InviteParticipantRequest struct {
	Email string `json:"email" binding:"required,email"`
}
