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

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// CreateActivity godoc
// @Summary Schedule an activity on a trip
// @Tags Activity
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateActivityRequest true "Title and occurrence timestamp"
// @Success 200 {object} response_models.CreateActivityResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/activities [post]
func (a *ActivityController) CreateActivity(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a valid UUID")
		return
	}

	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity payload: "+err.Error())
		return
	}

	activityId, err := a.activityService.CreateActivity(c.Request.Context(), tripId, req.Title, req.OccursAt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CreateActivityResponse{ActivityID: activityId}, "Activity created successfully")
}

// ListTripActivities godoc
// @Summary List trip activities grouped by day
// @Description One bucket per calendar day of the trip, both endpoints inclusive, activities in ascending occurrence order
// @Tags Activity
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripActivitiesResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/activities [get]
func (a *ActivityController) ListTripActivities(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID must be a valid UUID")
		return
	}

	days, err := a.activityService.ListActivitiesByDay(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TripActivitiesResponse{Activities: days}, "Activities fetched successfully")
}
