package api

import (
	"context"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fakes embed the service interface so only the methods a test sets up need
// implementing; anything else panics on the nil embedded value.

type fakeScoreService struct {
	service.ScoreService
	CalculateDayFunc func(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error)
	GetRangeFunc     func(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error)
	WeeklyFunc       func(ctx context.Context, userID primitive.ObjectID, end string) (*service.WeeklySummary, error)
	PreviewFunc      func(input scoring.Context) (scoring.Result, error)
}

func (f *fakeScoreService) CalculateDay(ctx context.Context, userID primitive.ObjectID, date string) (*domain.NutritionScore, error) {
	return f.CalculateDayFunc(ctx, userID, date)
}

func (f *fakeScoreService) GetRange(ctx context.Context, userID primitive.ObjectID, from, to string) ([]domain.NutritionScore, error) {
	return f.GetRangeFunc(ctx, userID, from, to)
}

func (f *fakeScoreService) Weekly(ctx context.Context, userID primitive.ObjectID, end string) (*service.WeeklySummary, error) {
	return f.WeeklyFunc(ctx, userID, end)
}

func (f *fakeScoreService) Preview(input scoring.Context) (scoring.Result, error) {
	return f.PreviewFunc(input)
}

type fakeFoodLogService struct {
	service.FoodLogService
	LogFoodFunc     func(ctx context.Context, userID primitive.ObjectID, in service.FoodLogInput) (*domain.FoodLog, error)
	GetByDateFunc   func(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error)
	GetPhotoURLFunc func(ctx context.Context, userID, logID primitive.ObjectID) (string, error)
}

func (f *fakeFoodLogService) LogFood(ctx context.Context, userID primitive.ObjectID, in service.FoodLogInput) (*domain.FoodLog, error) {
	return f.LogFoodFunc(ctx, userID, in)
}

func (f *fakeFoodLogService) GetByDate(ctx context.Context, userID primitive.ObjectID, date string) ([]domain.FoodLog, error) {
	return f.GetByDateFunc(ctx, userID, date)
}

func (f *fakeFoodLogService) GetPhotoURL(ctx context.Context, userID, logID primitive.ObjectID) (string, error) {
	return f.GetPhotoURLFunc(ctx, userID, logID)
}

type fakeCoachService struct {
	service.CoachService
	GetAthleteWeeklyFunc func(ctx context.Context, coachID, athleteID primitive.ObjectID, end string) (*service.WeeklySummary, error)
}

func (f *fakeCoachService) GetAthleteWeekly(ctx context.Context, coachID, athleteID primitive.ObjectID, end string) (*service.WeeklySummary, error) {
	return f.GetAthleteWeeklyFunc(ctx, coachID, athleteID, end)
}
