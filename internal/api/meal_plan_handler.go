package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/service"

	"github.com/gin-gonic/gin"
)

type MealPlanHandler struct {
	mealPlanService service.MealPlanService
}

func NewMealPlanHandler(mealPlanService service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlanService: mealPlanService}
}

// MealPlanRequest is the body of PUT /meal-plans/:date.
type MealPlanRequest struct {
	Load              string                 `json:"load" binding:"required"` // rest, easy, moderate, long, quality
	Meals             []domain.PlannedMeal   `json:"meals"`
	Session           *domain.PlannedSession `json:"session"`
	Fueling           domain.FuelingTargets  `json:"fueling"`
	HydrationTargetMl float64                `json:"hydrationTargetMl"`
	MinFatKcal        float64                `json:"minFatKcal"`
}

// SavePlan godoc
// @Summary Create or replace the plan for a day
// @Tags MealPlans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param plan body MealPlanRequest true "Daily plan"
// @Success 200 {object} domain.DailyMealPlan
// @Failure 400 {object} gin.H "Invalid plan, date or training load"
// @Router /meal-plans/{date} [put]
func (h *MealPlanHandler) SavePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.mealPlanService.SavePlan(c.Request.Context(), userID, &domain.DailyMealPlan{
		Date:              c.Param("date"),
		Load:              scoring.Load(req.Load),
		Meals:             req.Meals,
		Session:           req.Session,
		Fueling:           req.Fueling,
		HydrationTargetMl: req.HydrationTargetMl,
		MinFatKcal:        req.MinFatKcal,
	})
	if err != nil {
		abortWithServiceError(c, err, "Failed to save meal plan.")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// GetPlan godoc
// @Summary Get the plan for a day
// @Tags MealPlans
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} domain.DailyMealPlan
// @Failure 404 {object} gin.H "No plan for this day"
// @Router /meal-plans/{date} [get]
func (h *MealPlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	plan, err := h.mealPlanService.GetPlan(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to load meal plan.")
		return
	}
	c.JSON(http.StatusOK, plan)
}
