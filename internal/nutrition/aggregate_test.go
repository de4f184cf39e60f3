package nutrition

import (
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func logAt(hour int, meal scoring.MealType, m scoring.Macros) domain.FoodLog {
	return domain.FoodLog{EatenAt: day.Add(time.Duration(hour) * time.Hour), MealType: meal, Macros: m}
}

func TestSumTargets(t *testing.T) {
	meals := []domain.PlannedMeal{
		{Type: scoring.MealBreakfast, Macros: scoring.Macros{Calories: 500, Protein: 30, Carbs: 70, Fat: 12}},
		{Type: scoring.MealLunch, Macros: scoring.Macros{Calories: 700, Protein: 40, Carbs: 90, Fat: 20}},
		{Type: scoring.MealDinner, Macros: scoring.Macros{Calories: 800, Protein: 50, Carbs: 90, Fat: 28}},
	}

	assert.Equal(t, scoring.Macros{Calories: 2000, Protein: 120, Carbs: 250, Fat: 60}, SumTargets(meals))
	assert.Equal(t, scoring.Macros{}, SumTargets(nil))
}

func TestSumActualsAndMeals(t *testing.T) {
	logs := []domain.FoodLog{
		logAt(7, scoring.MealBreakfast, scoring.Macros{Calories: 400, Protein: 20, Carbs: 60, Fat: 8}),
		logAt(8, scoring.MealBreakfast, scoring.Macros{Calories: 100, Carbs: 25}),
		logAt(13, scoring.MealLunch, scoring.Macros{Calories: 650, Protein: 35, Carbs: 80, Fat: 20}),
		{EatenAt: day.Add(15 * time.Hour), MealType: scoring.MealSnack, WaterMl: 500},
	}

	assert.Equal(t, scoring.Macros{Calories: 1150, Protein: 55, Carbs: 165, Fat: 28}, SumActuals(logs))
	assert.Equal(t, []scoring.MealType{scoring.MealBreakfast, scoring.MealLunch}, MealTypes(logs))
	assert.Equal(t, map[scoring.MealType]float64{
		scoring.MealBreakfast: 500,
		scoring.MealLunch:     650,
	}, CaloriesByMeal(logs))
	assert.Equal(t, 500.0, Water(logs))
}

func TestIntakeBetween(t *testing.T) {
	logs := []domain.FoodLog{
		logAt(6, scoring.MealBreakfast, scoring.Macros{Carbs: 40, Protein: 5}),
		logAt(8, scoring.MealSnack, scoring.Macros{Carbs: 30}),
		logAt(10, scoring.MealSnack, scoring.Macros{Carbs: 60, Protein: 25}),
	}

	// end is exclusive
	got := IntakeBetween(logs, day.Add(6*time.Hour), day.Add(10*time.Hour))
	assert.Equal(t, 70.0, got.Carbs)
	assert.Equal(t, 5.0, got.Protein)

	assert.Equal(t, scoring.Macros{}, IntakeBetween(logs, day.Add(11*time.Hour), day.Add(12*time.Hour)))
}
