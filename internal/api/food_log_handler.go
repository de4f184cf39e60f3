package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FoodLogHandler struct {
	foodLogService service.FoodLogService
}

func NewFoodLogHandler(foodLogService service.FoodLogService) *FoodLogHandler {
	return &FoodLogHandler{foodLogService: foodLogService}
}

// --- DTOs ---

// CreateFoodLogRequest logs a food. With foodId and grams the macros come
// from the catalog; otherwise they are taken as sent.
type CreateFoodLogRequest struct {
	EatenAt  time.Time        `json:"eatenAt" binding:"required"`
	MealType scoring.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Name     string           `json:"name"`
	FoodID   string           `json:"foodId"`
	Grams    float64          `json:"grams" binding:"gte=0"`
	Macros   scoring.Macros   `json:"macros"`
	WaterMl  float64          `json:"waterMl" binding:"gte=0"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"` // e.g. "image/jpeg"
}

type ConfirmPhotoRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize" binding:"gte=0"`
	ContentType string `json:"contentType" binding:"required"`
}

// CreateFoodLog godoc
// @Summary Log food or water
// @Tags FoodLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body CreateFoodLogRequest true "Food log entry"
// @Success 201 {object} domain.FoodLog
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Catalog food not found"
// @Router /food-logs [post]
func (h *FoodLogHandler) CreateFoodLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	in := service.FoodLogInput{
		EatenAt:  req.EatenAt,
		MealType: req.MealType,
		Name:     req.Name,
		Grams:    req.Grams,
		Macros:   req.Macros,
		WaterMl:  req.WaterMl,
	}
	if req.FoodID != "" {
		foodID, err := primitive.ObjectIDFromHex(req.FoodID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid foodId format.")
			return
		}
		in.FoodID = &foodID
	}

	entry, err := h.foodLogService.LogFood(c.Request.Context(), userID, in)
	if err != nil {
		abortWithServiceError(c, err, "Failed to log food.")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetFoodLogs godoc
// @Summary List a day's food logs
// @Tags FoodLogs
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} domain.FoodLog
// @Router /food-logs [get]
func (h *FoodLogHandler) GetFoodLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if date == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'date' is required.")
		return
	}

	logs, err := h.foodLogService.GetByDate(c.Request.Context(), userID, date)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve food logs.")
		return
	}
	if logs == nil {
		logs = []domain.FoodLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// DeleteFoodLog godoc
// @Summary Delete a food log and its photo
// @Tags FoodLogs
// @Security BearerAuth
// @Param id path string true "Food log ID"
// @Success 204 "No Content"
// @Router /food-logs/{id} [delete]
func (h *FoodLogHandler) DeleteFoodLog(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.foodLogService.DeleteLog(c.Request.Context(), userID, logID); err != nil {
		abortWithServiceError(c, err, "Failed to delete food log.")
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Photo Upload ---

// RequestPhotoUpload godoc
// @Summary Get a presigned URL to upload a meal photo
// @Description The client PUTs the image to uploadUrl with the same Content-Type, then confirms.
// @Tags FoodLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food log ID"
// @Param request body PhotoUploadRequest true "Content type"
// @Success 200 {object} service.UploadURLResponse
// @Failure 400 {object} gin.H "Not an image content type"
// @Router /food-logs/{id}/photo [post]
func (h *FoodLogHandler) RequestPhotoUpload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp, err := h.foodLogService.RequestPhotoUpload(c.Request.Context(), userID, logID, req.ContentType)
	if err != nil {
		abortWithServiceError(c, err, "Failed to generate upload URL.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmPhoto godoc
// @Summary Confirm an uploaded meal photo
// @Tags FoodLogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food log ID"
// @Param request body ConfirmPhotoRequest true "Uploaded object"
// @Success 200 {object} domain.FoodLog
// @Router /food-logs/{id}/photo/confirm [post]
func (h *FoodLogHandler) ConfirmPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req ConfirmPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	entry, err := h.foodLogService.ConfirmPhoto(c.Request.Context(), userID, logID, req.ObjectKey, req.FileName, req.FileSize, req.ContentType)
	if err != nil {
		abortWithServiceError(c, err, "Failed to confirm photo upload.")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetPhotoURL godoc
// @Summary Get a presigned URL to view a meal photo
// @Tags FoodLogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food log ID"
// @Success 200 {object} gin.H "url"
// @Failure 404 {object} gin.H "No photo"
// @Router /food-logs/{id}/photo [get]
func (h *FoodLogHandler) GetPhotoURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	logID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	url, err := h.foodLogService.GetPhotoURL(c.Request.Context(), userID, logID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to generate download URL.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
