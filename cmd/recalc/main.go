// Command recalc recomputes stored daily scores for every athlete over a
// date range, e.g. after the meal plans or activities of past days changed.
//
//	recalc -from 2025-03-01 -to 2025-03-07
//
// Both bounds default to yesterday (UTC).
package main

import (
	"context"
	"flag"
	"log"
	"nutrisync/nutrisync-app/internal/config"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository/mongo"
	"nutrisync/nutrisync-app/internal/service"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	yesterday := domain.FormatDate(time.Now().AddDate(0, 0, -1))
	from := flag.String("from", yesterday, "first day to recalculate (YYYY-MM-DD)")
	to := flag.String("to", yesterday, "last day to recalculate (YYYY-MM-DD)")
	configPath := flag.String("config", ".", "directory containing config.yaml")
	flag.Parse()

	os.Exit(run(*configPath, *from, *to))
}

// run returns the process exit code: 1 when the run aborted, 2 when some
// days failed.
func run(configPath, from, to string) int {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("FATAL: Could not load config: %v", err)
		return 1
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Printf("FATAL: Could not connect to MongoDB: %v", err)
		return 1
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	scoreService := service.NewScoreService(
		mongo.NewMongoUserRepository(appDB),
		mongo.NewMongoMealPlanRepository(appDB),
		mongo.NewMongoFoodLogRepository(appDB),
		mongo.NewMongoTrainingActivityRepository(appDB),
		mongo.NewMongoNutritionScoreRepository(appDB),
		service.ScoreSettings{
			StreakMinScore:     cfg.Scoring.StreakMinScore,
			StreakLookbackDays: cfg.Scoring.StreakLookbackDays,
		},
	)

	// Ctrl-C stops before the next day.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("INFO: Recalculating scores from %s to %s", from, to)
	report, err := scoreService.RecalculateRange(ctx, from, to)
	if err != nil {
		log.Printf("ERROR: Recalculation aborted after %d days: %v", report.Processed, err)
		return 1
	}
	if report.Failed > 0 {
		return 2
	}
	return 0
}
