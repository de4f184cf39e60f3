package service

import (
	"context"
	"errors"
	"fmt"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/repository"
	"nutrisync/nutrisync-app/internal/scoring"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMealPlanNotFound = errors.New("meal plan not found for this date")
	ErrInvalidMealPlan  = errors.New("invalid meal plan")
)

type MealPlanService interface {
	SavePlan(ctx context.Context, userID primitive.ObjectID, plan *domain.DailyMealPlan) (*domain.DailyMealPlan, error)
	GetPlan(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyMealPlan, error)
}

type mealPlanService struct {
	mealPlanRepo repository.MealPlanRepository
}

// NewMealPlanService creates a new instance of mealPlanService.
func NewMealPlanService(mealPlanRepo repository.MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepo: mealPlanRepo}
}

// SavePlan validates and upserts the user's plan for plan.Date.
func (s *mealPlanService) SavePlan(ctx context.Context, userID primitive.ObjectID, plan *domain.DailyMealPlan) (*domain.DailyMealPlan, error) {
	if err := validateMealPlan(plan); err != nil {
		return nil, err
	}
	plan.UserID = userID
	if err := s.mealPlanRepo.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *mealPlanService) GetPlan(ctx context.Context, userID primitive.ObjectID, date string) (*domain.DailyMealPlan, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	plan, err := s.mealPlanRepo.GetByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

// validateMealPlan normalises the load and checks every field the score reads.
func validateMealPlan(plan *domain.DailyMealPlan) error {
	if _, err := domain.ParseDate(plan.Date); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	load, err := scoring.ParseLoad(string(plan.Load))
	if err != nil {
		return err
	}
	plan.Load = load

	for _, m := range plan.Meals {
		if !m.Type.Valid() {
			return fmt.Errorf("%w: unknown meal type %q", ErrInvalidMealPlan, m.Type)
		}
		if !validMacros(m.Macros) {
			return fmt.Errorf("%w: negative macros for %s", ErrInvalidMealPlan, m.Type)
		}
	}
	if sess := plan.Session; sess != nil {
		if sess.Start.IsZero() || sess.DurationMinutes <= 0 {
			return fmt.Errorf("%w: session needs a start and a positive duration", ErrInvalidMealPlan)
		}
		if sess.Intensity < 0 || sess.Intensity > 5 {
			return fmt.Errorf("%w: session intensity must be a zone 1-5", ErrInvalidMealPlan)
		}
	}
	f := plan.Fueling
	if f.PreCarbs < 0 || f.DuringCarbsPerHour < 0 || f.PostCarbs < 0 || f.PostProtein < 0 ||
		f.PreWindowMinutes < 0 || f.PostWindowMinutes < 0 {
		return fmt.Errorf("%w: fueling targets cannot be negative", ErrInvalidMealPlan)
	}
	if plan.HydrationTargetMl < 0 || plan.MinFatKcal < 0 {
		return fmt.Errorf("%w: hydration and fat floor cannot be negative", ErrInvalidMealPlan)
	}
	return nil
}
