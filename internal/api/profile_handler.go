package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type UpdateProfileRequest struct {
	WeightKg     float64 `json:"weightKg" binding:"gte=0"`
	MaxHeartRate float64 `json:"maxHeartRate" binding:"gte=0"`
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Router /me/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to load profile.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdateProfile godoc
// @Summary Update body metrics
// @Description Sets weight and max heart rate. Max heart rate drives intensity zones of recorded activities.
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param metrics body UpdateProfileRequest true "Body metrics"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /me/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	user, err := h.profileService.UpdateMetrics(c.Request.Context(), userID, req.WeightKg, req.MaxHeartRate)
	if err != nil {
		abortWithServiceError(c, err, "Failed to update profile.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}
