package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

// FoodHandler holds the food catalog service dependency.
type FoodHandler struct {
	foodService service.FoodService
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(foodService service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// --- DTOs ---

// FoodRequest defines the expected JSON for creating or updating a food.
type FoodRequest struct {
	Name    string         `json:"name" binding:"required"`
	Brand   string         `json:"brand"`
	Per100g scoring.Macros `json:"per100g"` // kcal and grams per 100 g
}

// FoodResponse is the DTO for returning food details.
type FoodResponse struct {
	ID        string         `json:"id"`
	OwnerID   string         `json:"ownerId"`
	Name      string         `json:"name"`
	Brand     string         `json:"brand,omitempty"`
	Per100g   scoring.Macros `json:"per100g"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// MapFoodToResponse converts a domain.Food to FoodResponse DTO.
func MapFoodToResponse(f *domain.Food) FoodResponse {
	if f == nil {
		return FoodResponse{}
	}
	return FoodResponse{
		ID:        f.ID.Hex(),
		OwnerID:   f.OwnerID.Hex(),
		Name:      f.Name,
		Brand:     f.Brand,
		Per100g:   f.Per100g,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

// MapFoodsToResponse converts a slice of domain.Food to FoodResponse DTOs.
func MapFoodsToResponse(foods []domain.Food) []FoodResponse {
	responses := make([]FoodResponse, len(foods))
	for i := range foods {
		responses[i] = MapFoodToResponse(&foods[i])
	}
	return responses
}

// --- Handler Methods ---

// CreateFood godoc
// @Summary Add a food to the caller's catalog
// @Tags Foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param food body FoodRequest true "Food details"
// @Success 201 {object} FoodResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Router /foods [post]
func (h *FoodHandler) CreateFood(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	food, err := h.foodService.CreateFood(c.Request.Context(), ownerID, req.Name, req.Brand, req.Per100g)
	if err != nil {
		abortWithServiceError(c, err, "Failed to create food.")
		return
	}
	c.JSON(http.StatusCreated, MapFoodToResponse(food))
}

// GetFoods godoc
// @Summary List the caller's food catalog
// @Tags Foods
// @Produce json
// @Security BearerAuth
// @Success 200 {array} FoodResponse
// @Router /foods [get]
func (h *FoodHandler) GetFoods(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	foods, err := h.foodService.GetFoods(c.Request.Context(), ownerID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve foods.")
		return
	}
	c.JSON(http.StatusOK, MapFoodsToResponse(foods))
}

// GetFood godoc
// @Summary Get one food of the caller's catalog
// @Tags Foods
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Success 200 {object} FoodResponse
// @Failure 404 {object} gin.H "Food not found"
// @Router /foods/{id} [get]
func (h *FoodHandler) GetFood(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	foodID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	food, err := h.foodService.GetFood(c.Request.Context(), ownerID, foodID)
	if err != nil {
		abortWithServiceError(c, err, "Failed to retrieve food.")
		return
	}
	c.JSON(http.StatusOK, MapFoodToResponse(food))
}

// UpdateFood godoc
// @Summary Update a food
// @Tags Foods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Param food body FoodRequest true "Food details"
// @Success 200 {object} FoodResponse
// @Failure 403 {object} gin.H "Not the owner"
// @Failure 404 {object} gin.H "Food not found"
// @Router /foods/{id} [put]
func (h *FoodHandler) UpdateFood(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	foodID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	var req FoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	food, err := h.foodService.UpdateFood(c.Request.Context(), ownerID, foodID, req.Name, req.Brand, req.Per100g)
	if err != nil {
		abortWithServiceError(c, err, "Failed to update food.")
		return
	}
	c.JSON(http.StatusOK, MapFoodToResponse(food))
}

// DeleteFood godoc
// @Summary Delete a food
// @Tags Foods
// @Security BearerAuth
// @Param id path string true "Food ID"
// @Success 204 "No Content"
// @Failure 404 {object} gin.H "Food not found"
// @Router /foods/{id} [delete]
func (h *FoodHandler) DeleteFood(c *gin.Context) {
	ownerID, ok := currentUserID(c)
	if !ok {
		return
	}
	foodID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}
	if err := h.foodService.DeleteFood(c.Request.Context(), ownerID, foodID); err != nil {
		abortWithServiceError(c, err, "Failed to delete food.")
		return
	}
	c.Status(http.StatusNoContent)
}
