package api

import (
	"errors"
	"log"
	"net/http"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/service"

	"github.com/gin-gonic/gin"
)

var errorStatuses = []struct {
	status int
	errs   []error
}{
	{http.StatusNotFound, []error{
		service.ErrUserNotFound, service.ErrAthleteNotFound, service.ErrFoodNotFound,
		service.ErrFoodLogNotFound, service.ErrActivityNotFound, service.ErrMealPlanNotFound,
		service.ErrScoreNotFound, service.ErrPhotoMissing,
	}},
	{http.StatusForbidden, []error{
		service.ErrFoodAccessDenied, service.ErrFoodLogAccessDenied,
		service.ErrAthleteNotManaged, service.ErrAthleteNotRole,
	}},
	{http.StatusConflict, []error{
		service.ErrUserAlreadyExists, service.ErrAthleteAlreadyAssigned,
	}},
	{http.StatusUnauthorized, []error{
		service.ErrAuthenticationFailed,
	}},
	{http.StatusBadRequest, []error{
		service.ErrInvalidDate, service.ErrInvalidDateRange, service.ErrInvalidMealPlan,
		service.ErrInvalidFoodLog, service.ErrInvalidActivity, service.ErrInvalidPhotoType,
		service.ErrPhotoKeyMismatch, service.ErrValidationFailed, service.ErrInvalidMetrics,
		service.ErrInvalidRole, scoring.ErrUnknownLoad,
	}},
}

// statusForError maps a service error onto an HTTP status, 500 when unknown.
func statusForError(err error) int {
	for _, group := range errorStatuses {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	return http.StatusInternalServerError
}

// abortWithServiceError answers with the mapped status. Internal errors are
// logged and answered with fallback instead of their text.
func abortWithServiceError(c *gin.Context, err error, fallback string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, status, fallback)
		return
	}
	abortWithError(c, status, err.Error())
}
