package service

import (
	"context"
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"nutrisync/nutrisync-app/internal/testing/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSavePlan_NormalisesLoad(t *testing.T) {
	var saved *domain.DailyMealPlan
	repo := &mocks.MockMealPlanRepository{
		UpsertFunc: func(_ context.Context, p *domain.DailyMealPlan) error {
			saved = p
			return nil
		},
	}
	svc := NewMealPlanService(repo)
	userID := primitive.NewObjectID()

	plan, err := svc.SavePlan(context.Background(), userID, &domain.DailyMealPlan{
		Date:  "2024-05-01",
		Load:  " Long ",
		Meals: []domain.PlannedMeal{{Type: scoring.MealBreakfast, Macros: scoring.Macros{Calories: 600}}},
	})
	require.NoError(t, err)

	assert.Equal(t, scoring.LoadLong, plan.Load)
	assert.Equal(t, userID, saved.UserID)
}

func TestSavePlan_Validation(t *testing.T) {
	svc := NewMealPlanService(&mocks.MockMealPlanRepository{})
	uid := primitive.NewObjectID()
	ctx := context.Background()

	cases := []struct {
		name string
		plan domain.DailyMealPlan
		want error
	}{
		{"bad date", domain.DailyMealPlan{Date: "2024-13-01", Load: scoring.LoadRest}, ErrInvalidDate},
		{"unknown load", domain.DailyMealPlan{Date: "2024-05-01", Load: "tempo"}, scoring.ErrUnknownLoad},
		{"bad meal type", domain.DailyMealPlan{Date: "2024-05-01", Load: scoring.LoadRest,
			Meals: []domain.PlannedMeal{{Type: "brunch"}}}, ErrInvalidMealPlan},
		{"session without duration", domain.DailyMealPlan{Date: "2024-05-01", Load: scoring.LoadEasy,
			Session: &domain.PlannedSession{Start: time.Now()}}, ErrInvalidMealPlan},
		{"negative fueling", domain.DailyMealPlan{Date: "2024-05-01", Load: scoring.LoadEasy,
			Fueling: domain.FuelingTargets{PostProtein: -5}}, ErrInvalidMealPlan},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := tc.plan
			_, err := svc.SavePlan(ctx, uid, &plan)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGetPlan_NotFound(t *testing.T) {
	svc := NewMealPlanService(&mocks.MockMealPlanRepository{})

	_, err := svc.GetPlan(context.Background(), primitive.NewObjectID(), "2024-05-01")
	assert.ErrorIs(t, err, ErrMealPlanNotFound)
}
