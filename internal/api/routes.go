package api

import (
	"net/http"
	"nutrisync/nutrisync-app/internal/domain" // Needed for RoleMiddleware
	"nutrisync/nutrisync-app/internal/service"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Auth             service.AuthService
	Profile          service.ProfileService
	Coach            service.CoachService
	Food             service.FoodService
	MealPlan         service.MealPlanService
	FoodLog          service.FoodLogService
	TrainingActivity service.TrainingActivityService
	Score            service.ScoreService
}

func SetupRoutes(router *gin.Engine, jwtSecret string, services Services) {
	authHandler := NewAuthHandler(services.Auth)
	profileHandler := NewProfileHandler(services.Profile)
	coachHandler := NewCoachHandler(services.Coach)
	foodHandler := NewFoodHandler(services.Food)
	mealPlanHandler := NewMealPlanHandler(services.MealPlan)
	foodLogHandler := NewFoodLogHandler(services.FoodLog)
	activityHandler := NewTrainingActivityHandler(services.TrainingActivity)
	scoreHandler := NewScoreHandler(services.Score)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// Both roles
		protected.GET("/me/profile", profileHandler.GetProfile)
		protected.PUT("/me/profile", profileHandler.UpdateProfile)

		// --- Athlete Routes ---
		athlete := protected.Group("")
		athlete.Use(RoleMiddleware(domain.RoleAthlete))
		{
			foodGroup := athlete.Group("/foods")
			{
				foodGroup.POST("", foodHandler.CreateFood)
				foodGroup.GET("", foodHandler.GetFoods)
				foodGroup.GET("/:id", foodHandler.GetFood)
				foodGroup.PUT("/:id", foodHandler.UpdateFood)
				foodGroup.DELETE("/:id", foodHandler.DeleteFood)
			}

			athlete.PUT("/meal-plans/:date", mealPlanHandler.SavePlan)
			athlete.GET("/meal-plans/:date", mealPlanHandler.GetPlan)

			foodLogGroup := athlete.Group("/food-logs")
			{
				foodLogGroup.POST("", foodLogHandler.CreateFoodLog)
				foodLogGroup.GET("", foodLogHandler.GetFoodLogs)
				foodLogGroup.DELETE("/:id", foodLogHandler.DeleteFoodLog)
				// Photo flow: request URL, PUT to S3, confirm.
				foodLogGroup.POST("/:id/photo", foodLogHandler.RequestPhotoUpload)
				foodLogGroup.POST("/:id/photo/confirm", foodLogHandler.ConfirmPhoto)
				foodLogGroup.GET("/:id/photo", foodLogHandler.GetPhotoURL)
			}

			activityGroup := athlete.Group("/training-activities")
			{
				activityGroup.POST("", activityHandler.CreateActivity)
				activityGroup.GET("", activityHandler.GetActivities)
				activityGroup.DELETE("/:id", activityHandler.DeleteActivity)
			}

			scoreGroup := athlete.Group("/scores")
			{
				scoreGroup.GET("", scoreHandler.GetRange)
				scoreGroup.GET("/weekly", scoreHandler.Weekly)
				scoreGroup.POST("/preview", scoreHandler.Preview)
				scoreGroup.GET("/:date", scoreHandler.GetDay)
				scoreGroup.POST("/:date/calculate", scoreHandler.CalculateDay)
			}
		}

		// --- Coach Routes ---
		coachGroup := protected.Group("/coach")
		coachGroup.Use(RoleMiddleware(domain.RoleCoach))
		{
			// POST /api/v1/coach/athletes
			coachGroup.POST("/athletes", coachHandler.AddAthleteByEmail)
			// GET /api/v1/coach/athletes
			coachGroup.GET("/athletes", coachHandler.GetManagedAthletes)
			// GET /api/v1/coach/athletes/{athleteId}/scores/weekly
			coachGroup.GET("/athletes/:athleteId/scores/weekly", coachHandler.GetAthleteWeekly)
		}
	}
}
