package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

// ScoreHandler exposes the unified daily score.
type ScoreHandler struct {
	scoreService service.ScoreService
}

func NewScoreHandler(scoreService service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreService: scoreService}
}

// CalculateDay godoc
// @Summary Calculate and store the score of a day
// @Description Scores the day from the stored plan, food logs and training activities. Recalculating overwrites the stored score.
// @Tags Scores
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} domain.NutritionScore
// @Failure 400 {object} gin.H "Invalid date or unknown training load"
// @Failure 404 {object} gin.H "No meal plan for this day"
// @Router /scores/{date}/calculate [post]
func (h *ScoreHandler) CalculateDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	score, err := h.scoreService.CalculateDay(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to calculate score.")
		return
	}
	c.JSON(http.StatusOK, score)
}

// GetDay godoc
// @Summary Get the stored score of a day
// @Tags Scores
// @Produce json
// @Security BearerAuth
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} domain.NutritionScore
// @Failure 404 {object} gin.H "Not calculated yet"
// @Router /scores/{date} [get]
func (h *ScoreHandler) GetDay(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	score, err := h.scoreService.GetDay(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		abortWithServiceError(c, err, "Failed to load score.")
		return
	}
	c.JSON(http.StatusOK, score)
}

// GetRange godoc
// @Summary List stored scores in a date range
// @Tags Scores
// @Produce json
// @Security BearerAuth
// @Param from query string true "First day (YYYY-MM-DD)"
// @Param to query string true "Last day (YYYY-MM-DD)"
// @Success 200 {array} domain.NutritionScore
// @Failure 400 {object} gin.H "Invalid range"
// @Router /scores [get]
func (h *ScoreHandler) GetRange(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameters 'from' and 'to' are required.")
		return
	}

	scores, err := h.scoreService.GetRange(c.Request.Context(), userID, from, to)
	if err != nil {
		abortWithServiceError(c, err, "Failed to load scores.")
		return
	}
	if scores == nil {
		scores = []domain.NutritionScore{}
	}
	c.JSON(http.StatusOK, scores)
}

// Weekly godoc
// @Summary Weekly score
// @Description Sum of the stored daily scores of the seven days ending at `end` (0-700), returned as weeklyTotal with daysCounted.
// @Tags Scores
// @Produce json
// @Security BearerAuth
// @Param end query string false "Last day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} service.WeeklySummary
// @Router /scores/weekly [get]
func (h *ScoreHandler) Weekly(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	end := c.DefaultQuery("end", domain.FormatDate(time.Now()))

	summary, err := h.scoreService.Weekly(c.Request.Context(), userID, end)
	if err != nil {
		abortWithServiceError(c, err, "Failed to load weekly score.")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Preview godoc
// @Summary Score a hypothetical day
// @Description Runs the calculator on the posted context without storing anything.
// @Tags Scores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param context body scoring.Context true "Scoring input"
// @Success 200 {object} scoring.Result
// @Failure 400 {object} gin.H "Invalid input or unknown training load"
// @Router /scores/preview [post]
func (h *ScoreHandler) Preview(c *gin.Context) {
	var input scoring.Context
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	result, err := h.scoreService.Preview(input)
	if err != nil {
		abortWithServiceError(c, err, "Failed to calculate score.")
		return
	}
	c.JSON(http.StatusOK, result)
}
