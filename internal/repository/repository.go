package repository

import (
	"context"
	"nutrisync/nutrisync-app/internal/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate key")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with profiles.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateMetrics(ctx context.Context, id primitive.ObjectID, weightKg, maxHeartRate float64) error
	AddAthleteToCoach(ctx context.Context, coachID, athleteID primitive.ObjectID) error
	GetAthletesByCoachID(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	SetCoachForAthlete(ctx context.Context, athleteID, coachID primitive.ObjectID) error
	ListAthleteIDs(ctx context.Context) ([]primitive.ObjectID, error)
}

// FoodRepository defines the interface for the per-user food catalog.
type FoodRepository interface {
	Create(ctx context.Context, food *domain.Food) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error)
	GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Food, error)
	Update(ctx context.Context, food *domain.Food) error
	Delete(ctx context.Context, id primitive.ObjectID, ownerID primitive.ObjectID) error // owner must match
}

// MealPlanRepository stores one DailyMealPlan per user and date.
type MealPlanRepository interface {
	Upsert(ctx context.Context, plan *domain.DailyMealPlan) error
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyMealPlan, error)
	ListDates(ctx context.Context, userID primitive.ObjectID, from, to string) ([]string, error)
}

// FoodLogRepository defines the interface for interacting with food logs.
type FoodLogRepository interface {
	Create(ctx context.Context, log *domain.FoodLog) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodLog, error)
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error)
	GetByEatenBetween(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.FoodLog, error) // [from, to)
	SetPhoto(ctx context.Context, id, photoID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}

// FoodPhotoRepository defines the interface for photo metadata.
type FoodPhotoRepository interface {
	Create(ctx context.Context, photo *domain.FoodPhoto) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodPhoto, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// TrainingActivityRepository defines the interface for recorded sessions.
type TrainingActivityRepository interface {
	Create(ctx context.Context, activity *domain.TrainingActivity) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.TrainingActivity, error)
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.TrainingActivity, error)
	Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}

// NutritionScoreRepository stores the computed daily scores.
type NutritionScoreRepository interface {
	Upsert(ctx context.Context, score *domain.NutritionScore) error
	GetByDate(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error)
	// GetRange returns scores with from <= date <= to, ordered by date ascending.
	GetRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error)
}
