// internal/api/coach_handler.go
package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	coachService service.CoachService
}

func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// --- DTOs for Roster Management ---
type AddAthleteRequest struct {
	AthleteEmail string `json:"athleteEmail" binding:"required,email"`
}

// AddAthleteByEmail godoc
// @Summary Add an athlete to the coach's roster by email
// @Description Associates an existing athlete with the authenticated coach.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param athleteRequest body AddAthleteRequest true "Athlete's email"
// @Success 200 {object} UserResponse "Athlete successfully added"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Forbidden (not a coach, or user is not an athlete)"
// @Failure 404 {object} gin.H "Athlete not found"
// @Failure 409 {object} gin.H "Athlete already has a coach"
// @Router /coach/athletes [post]
func (h *CoachHandler) AddAthleteByEmail(c *gin.Context) {
	var req AddAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}

	athlete, err := h.coachService.AddAthleteByEmail(c.Request.Context(), coachID, req.AthleteEmail)
	if err != nil {
		abortWithServiceError(c, err, "Failed to add athlete.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(athlete))
}

// GetManagedAthletes godoc
// @Summary Get the coach's athletes
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse "List of athletes"
// @Failure 403 {object} gin.H "Forbidden (not a coach)"
// @Router /coach/athletes [get]
func (h *CoachHandler) GetManagedAthletes(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}

	athletes, err := h.coachService.GetManagedAthletes(c.Request.Context(), coachID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve athletes.")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(athletes)) // [] rather than null when empty
}

// GetAthleteWeekly godoc
// @Summary Weekly score of one of the coach's athletes
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param athleteId path string true "Athlete ID"
// @Param end query string false "Last day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.WeeklySummary
// @Failure 403 {object} gin.H "Athlete not managed by this coach"
// @Router /coach/athletes/{athleteId}/scores/weekly [get]
func (h *CoachHandler) GetAthleteWeekly(c *gin.Context) {
	coachID, ok := currentUserID(c)
	if !ok {
		return
	}
	athleteID, ok := pathObjectID(c, "athleteId")
	if !ok {
		return
	}

	end := c.DefaultQuery("end", domain.FormatDate(time.Now()))
	summary, err := h.coachService.GetAthleteWeekly(c.Request.Context(), coachID, athleteID, end)
	if err != nil {
		abortWithServiceError(c, err, "Failed to load weekly score.")
		return
	}
	c.JSON(http.StatusOK, summary)
}
