package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"planner/internal/models/request_models"
	"planner/internal/models/response_models"
	"planner/internal/services"
	"planner/pkg/utils"
)

type ParticipantController struct {
	participantService services.ParticipantServiceInterface
}

func NewParticipantController(participantService services.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
	}
}

// InviteParticipant godoc
// @Summary Invite a participant to a trip
// @Tags Participant
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.InviteParticipantRequest true "Invitee email"
// @Success 200 {object} response_models.InviteParticipantResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/invites [post]
func (p *ParticipantController) InviteParticipant(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a valid UUID")
		return
	}

	var req request_models.InviteParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid invitee email is required")
		return
	}

	participantId, err := p.participantService.InviteParticipant(c.Request.Context(), tripId, req.Email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.InviteParticipantResponse{ParticipantID: participantId}, "Participant invited successfully")
}

// ConfirmParticipant godoc
// @Summary Confirm a participant's presence
// @Tags Participant
// @Produce json
// @Param participantId path string true "Participant ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /participants/{participantId}/confirm [get]
func (p *ParticipantController) ConfirmParticipant(c *gin.Context) {
	participantId := c.Param("participantId")
	if _, err := uuid.Parse(participantId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Participant ID must be a valid UUID")
		return
	}

	if err := p.participantService.ConfirmParticipant(c.Request.Context(), participantId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Participant confirmed successfully")
}

func (p *ParticipantController) ListTripParticipants(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a valid UUID")
		return
	}

	participants, err := p.participantService.ListParticipantsByTripId(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"participants": participants}, "Participants fetched successfully")
}
