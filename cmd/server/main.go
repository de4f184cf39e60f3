package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"nutrisync/nutrisync-app/internal/api"
	"nutrisync/nutrisync-app/internal/config"
	"nutrisync/nutrisync-app/internal/repository/mongo"
	"nutrisync/nutrisync-app/internal/service"
	"nutrisync/nutrisync-app/internal/storage"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title NutriSync API
// @version 1.0
// @description Daily nutrition and training tracking with a unified 0-100 daily score.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting NutriSync Server...")
	logConfigEnv()

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatalf("FATAL: jwt.secret (JWT_SECRET) must be set")
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureIndexes(ctx, appDB)
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 10*time.Second)
	fileStorage, err := storage.NewS3Storage(storageCtx, cfg.S3)
	storageCancel()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	foodRepo := mongo.NewMongoFoodRepository(appDB)
	mealPlanRepo := mongo.NewMongoMealPlanRepository(appDB)
	foodLogRepo := mongo.NewMongoFoodLogRepository(appDB)
	photoRepo := mongo.NewMongoFoodPhotoRepository(appDB)
	activityRepo := mongo.NewMongoTrainingActivityRepository(appDB)
	scoreRepo := mongo.NewMongoNutritionScoreRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	scoreService := service.NewScoreService(userRepo, mealPlanRepo, foodLogRepo, activityRepo, scoreRepo, service.ScoreSettings{
		StreakMinScore:     cfg.Scoring.StreakMinScore,
		StreakLookbackDays: cfg.Scoring.StreakLookbackDays,
	})
	services := api.Services{
		Auth:             service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		Profile:          service.NewProfileService(userRepo),
		Coach:            service.NewCoachService(userRepo, scoreService),
		Food:             service.NewFoodService(foodRepo),
		MealPlan:         service.NewMealPlanService(mealPlanRepo),
		FoodLog:          service.NewFoodLogService(foodLogRepo, photoRepo, foodRepo, fileStorage),
		TrainingActivity: service.NewTrainingActivityService(activityRepo, userRepo),
		Score:            scoreService,
	}

	// --- Initialize Gin Engine ---
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, services)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give in-flight requests 5 seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// logConfigEnv lists which configuration variables are set in the
// environment. Values are never printed.
func logConfigEnv() {
	prefixes := []string{"SERVER_", "DATABASE_", "S3_", "JWT_", "SCORING_"}
	for _, e := range os.Environ() {
		name, _, _ := strings.Cut(e, "=")
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				log.Printf("ENV: %s is set", name)
				break
			}
		}
	}
}
