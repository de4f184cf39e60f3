package service

import (
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2024-05-01 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func carbsLog(hhmm string, meal scoring.MealType, carbs, protein float64) domain.FoodLog {
	return domain.FoodLog{
		Date:     "2024-05-01",
		EatenAt:  at(hhmm),
		MealType: meal,
		Macros:   scoring.Macros{Calories: carbs*4 + protein*4, Carbs: carbs, Protein: protein},
	}
}

func sessionPlan() *domain.DailyMealPlan {
	return &domain.DailyMealPlan{
		Date: "2024-05-01",
		Load: scoring.LoadModerate,
		Session: &domain.PlannedSession{
			Start:           at("10:00"),
			DurationMinutes: 60,
			Type:            "run",
			Intensity:       3,
		},
		Fueling: domain.FuelingTargets{
			PreCarbs:           60,
			PreWindowMinutes:   120,
			DuringCarbsPerHour: 60,
			PostCarbs:          50,
			PostProtein:        25,
			PostWindowMinutes:  60,
		},
	}
}

func TestBuildScoringContext_WindowsFollowRecordedSession(t *testing.T) {
	logs := []domain.FoodLog{
		carbsLog("09:00", scoring.MealBreakfast, 70, 0),
		carbsLog("11:00", scoring.MealSnack, 90, 0),
		carbsLog("12:30", scoring.MealLunch, 50, 30),
		carbsLog("18:00", scoring.MealDinner, 100, 40),
	}
	activities := []domain.TrainingActivity{{
		StartTime:       at("10:30"),
		DurationMinutes: 90,
		Type:            "run",
		AvgHeartRate:    150,
		Intensity:       3,
	}}

	ctx := BuildScoringContext(DayInputs{Plan: sessionPlan(), Logs: logs, Activities: activities})

	// pre [08:30, 10:30)
	assert.True(t, ctx.Windows.Pre.Applicable)
	assert.Equal(t, 70.0, ctx.Windows.Pre.ActualCarbs)
	// during [10:30, 12:00): 90 g over 1.5 h
	assert.True(t, ctx.Windows.During.Applicable)
	assert.InDelta(t, 60.0, ctx.Windows.During.ActualCarbsPerHour, 1e-9)
	// post [12:00, 13:00)
	assert.True(t, ctx.Windows.Post.Applicable)
	assert.Equal(t, 50.0, ctx.Windows.Post.ActualCarbs)
	assert.Equal(t, 30.0, ctx.Windows.Post.ActualProtein)

	assert.Equal(t, 60.0, ctx.Training.PlannedMinutes)
	assert.Equal(t, 90.0, ctx.Training.ActualMinutes)
	assert.Equal(t, "run", ctx.Training.ActualType)
	assert.Equal(t, 3, ctx.Training.ActualIntensity)
	assert.True(t, ctx.Training.HasHeartRate)

	assert.ElementsMatch(t, []scoring.MealType{scoring.MealBreakfast, scoring.MealSnack, scoring.MealLunch, scoring.MealDinner}, ctx.Actual.Meals)
	assert.Equal(t, 310.0, ctx.Actual.Macros.Carbs)
}

func TestBuildScoringContext_FallsBackToPlannedSession(t *testing.T) {
	logs := []domain.FoodLog{
		carbsLog("07:30", scoring.MealBreakfast, 40, 0), // before the pre window
		carbsLog("09:00", scoring.MealSnack, 50, 0),
	}

	ctx := BuildScoringContext(DayInputs{Plan: sessionPlan(), Logs: logs})

	// pre [08:00, 10:00)
	assert.Equal(t, 50.0, ctx.Windows.Pre.ActualCarbs)
	assert.True(t, ctx.Windows.During.Applicable)
	assert.Equal(t, 0.0, ctx.Windows.During.ActualCarbsPerHour)
	assert.Equal(t, 0.0, ctx.Training.ActualMinutes)
	assert.False(t, ctx.Training.HasHeartRate)
}

func TestBuildScoringContext_NoSessionNoWindows(t *testing.T) {
	plan := sessionPlan()
	plan.Session = nil

	ctx := BuildScoringContext(DayInputs{Plan: plan})

	assert.False(t, ctx.Windows.Pre.Applicable)
	assert.False(t, ctx.Windows.During.Applicable)
	assert.False(t, ctx.Windows.Post.Applicable)
	assert.Equal(t, scoring.TrainingContext{}, ctx.Training)
}

func TestBuildScoringContext_DefaultWindowLengths(t *testing.T) {
	plan := sessionPlan()
	plan.Fueling.PreWindowMinutes = 0
	plan.Fueling.PostWindowMinutes = 0
	logs := []domain.FoodLog{
		carbsLog("08:05", scoring.MealBreakfast, 30, 0), // inside default 120 min pre window
		carbsLog("11:55", scoring.MealLunch, 20, 20),    // inside default 60 min post window
		carbsLog("12:05", scoring.MealLunch, 20, 20),    // after it
	}

	ctx := BuildScoringContext(DayInputs{Plan: plan, Logs: logs})

	assert.Equal(t, 30.0, ctx.Windows.Pre.ActualCarbs)
	assert.Equal(t, 20.0, ctx.Windows.Post.ActualCarbs)
}

func TestBuildScoringContext_Flags(t *testing.T) {
	plan := sessionPlan()
	plan.HydrationTargetMl = 2000
	logs := []domain.FoodLog{
		{EatenAt: at("08:00"), MealType: scoring.MealBreakfast, WaterMl: 1200},
		{EatenAt: at("13:00"), MealType: scoring.MealLunch, WaterMl: 800},
	}

	ctx := BuildScoringContext(DayInputs{Plan: plan, Logs: logs, StreakDays: 4})

	assert.True(t, ctx.Flags.HydrationMet)
	assert.Equal(t, 4, ctx.Flags.StreakDays)
	assert.Empty(t, ctx.Actual.Meals, "water-only entries are not meals")

	plan.HydrationTargetMl = 0
	ctx = BuildScoringContext(DayInputs{Plan: plan, Logs: logs})
	require.False(t, ctx.Flags.HydrationMet)
}

func TestBuildScoringContext_HeartRateWithoutMaxHeartRate(t *testing.T) {
	plan := sessionPlan()
	// no max HR on the profile when recorded, so no zone was stored
	activities := []domain.TrainingActivity{{
		StartTime:       at("10:00"),
		DurationMinutes: 60,
		Type:            "run",
		AvgHeartRate:    150,
	}}

	ctx := BuildScoringContext(DayInputs{Plan: plan, Activities: activities})
	assert.False(t, ctx.Training.HasHeartRate)
	assert.Equal(t, 0, ctx.Training.ActualIntensity)
	assert.Equal(t, 100.0, scoring.TrainingScore(ctx.Training).Total, "recording HR must not cost points")

	ctx = BuildScoringContext(DayInputs{Plan: plan, Activities: activities, MaxHeartRate: 190})
	assert.True(t, ctx.Training.HasHeartRate)
	assert.Equal(t, 3, ctx.Training.ActualIntensity)
	assert.Equal(t, 100.0, scoring.TrainingScore(ctx.Training).Total)
}

func TestBuildScoringContext_ZoneFollowsCurrentMaxHeartRate(t *testing.T) {
	activities := []domain.TrainingActivity{{
		StartTime:       at("10:00"),
		DurationMinutes: 60,
		Type:            "run",
		AvgHeartRate:    150,
		Intensity:       4, // stored against an older, lower max HR
	}}

	ctx := BuildScoringContext(DayInputs{Plan: sessionPlan(), Activities: activities, MaxHeartRate: 190})
	assert.Equal(t, 3, ctx.Training.ActualIntensity)

	ctx = BuildScoringContext(DayInputs{Plan: sessionPlan(), Activities: activities})
	assert.Equal(t, 4, ctx.Training.ActualIntensity)
}

func TestBuildScoringContext_WindowLogsOverrideDayLogs(t *testing.T) {
	dayLogs := []domain.FoodLog{carbsLog("18:00", scoring.MealDinner, 100, 40)}
	windowLogs := []domain.FoodLog{carbsLog("09:00", scoring.MealSnack, 60, 0)}

	ctx := BuildScoringContext(DayInputs{Plan: sessionPlan(), Logs: dayLogs, WindowLogs: windowLogs})

	assert.Equal(t, 60.0, ctx.Windows.Pre.ActualCarbs)
	assert.Equal(t, 100.0, ctx.Actual.Macros.Carbs)
}

func TestWindowBounds(t *testing.T) {
	from, to, ok := WindowBounds(sessionPlan(), nil)
	require.True(t, ok)
	assert.Equal(t, at("08:00"), from)
	assert.Equal(t, at("12:00"), to)

	plan := sessionPlan()
	plan.Session = nil
	_, _, ok = WindowBounds(plan, nil)
	assert.False(t, ok)
}
