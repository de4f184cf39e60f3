package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type TrainingActivityHandler struct {
	activityService service.TrainingActivityService
}

func NewTrainingActivityHandler(activityService service.TrainingActivityService) *TrainingActivityHandler {
	return &TrainingActivityHandler{activityService: activityService}
}

type CreateActivityRequest struct {
	StartTime       time.Time             `json:"startTime" binding:"required"`
	DurationMinutes float64               `json:"durationMinutes" binding:"required,gt=0"`
	Type            string                `json:"type" binding:"required"`
	AvgHeartRate    float64               `json:"avgHeartRate" binding:"gte=0"`
	Source          domain.ActivitySource `json:"source"`
}

// CreateActivity godoc
// @Summary Record a completed training session
// @Tags TrainingActivities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param activity body CreateActivityRequest true "Session"
// @Success 201 {object} domain.TrainingActivity
// @Failure 400 {object} gin.H "Invalid input"
// @Router /training-activities [post]
func (h *TrainingActivityHandler) CreateActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	activity, err := h.activityService.RecordActivity(c.Request.Context(), userID, service.ActivityInput{
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Type:            req.Type,
		AvgHeartRate:    req.AvgHeartRate,
		Source:          req.Source,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to record activity.")
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// GetActivities godoc
// @Summary List a day's training activities
// @Tags TrainingActivities
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} domain.TrainingActivity
// @Router /training-activities [get]
func (h *TrainingActivityHandler) GetActivities(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' is required.")
		return
	}

	activities, err := h.activityService.GetByDate(c.Request.Context(), userID, date)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve activities.")
		return
	}
	if activities == nil {
		activities = []domain.TrainingActivity{}
	}
	c.JSON(http.StatusOK, activities)
}

// DeleteActivity godoc
// @Summary Delete a training activity
// @Tags TrainingActivities
// @Security BearerAuth
// @Param id path string true "Activity ID"
// @Success 204 "No Content"
// @Router /training-activities/{id} [delete]
func (h *TrainingActivityHandler) DeleteActivity(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	activityID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.activityService.DeleteActivity(c.Request.Context(), userID, activityID); err != nil {
		abortWithServiceError(c, err, "Failed to delete activity.")
		return
	}
	c.Status(http.StatusNoContent)
}
