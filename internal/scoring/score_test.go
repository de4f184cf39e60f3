package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exactRestDay() Context {
	target := Macros{Calories: 2000, Protein: 120, Carbs: 250, Fat: 60}
	return Context{
		Target: DayTarget{Load: LoadRest, Macros: target},
		Actual: DayActual{
			Macros: target,
			Meals:  []MealType{MealBreakfast, MealLunch, MealDinner},
			CaloriesByMeal: map[MealType]float64{
				MealBreakfast: 600,
				MealLunch:     700,
				MealDinner:    700,
			},
		},
	}
}

func TestDailyScore_RestDayEqualsNutrition(t *testing.T) {
	ctx := exactRestDay()

	res, err := DailyScore(ctx)
	require.NoError(t, err)

	assert.Equal(t, Weights{Nutrition: 1.0, Training: 0.0}, res.Weights)
	assert.Equal(t, 100.0, res.Nutrition.Macros.Total)
	assert.Equal(t, 100.0, res.Nutrition.Timing.Total)
	assert.Equal(t, 100.0, res.Nutrition.Structure)
	assert.Equal(t, 100, res.Score)
	assert.Empty(t, res.Adjustments.Items)
}

func TestDailyScore_RestDayMissingMeal(t *testing.T) {
	ctx := exactRestDay()
	ctx.Actual.Meals = []MealType{MealBreakfast, MealDinner}
	ctx.Actual.CaloriesByMeal = map[MealType]float64{MealBreakfast: 900, MealDinner: 1100}

	res, err := DailyScore(ctx)
	require.NoError(t, err)

	// 100*0.50 + 100*0.35 + 75*0.15
	assert.InDelta(t, 96.25, res.Nutrition.Total, 1e-9)
	assert.Equal(t, 96, res.Score)
}

func TestDailyScore_ModerateDay(t *testing.T) {
	ctx := Context{
		Target: DayTarget{Load: LoadModerate, Macros: Macros{Calories: 2500, Protein: 150, Carbs: 300, Fat: 70}},
		Actual: DayActual{
			Macros: Macros{Calories: 2400, Protein: 135, Carbs: 315, Fat: 75},
			Meals:  []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack},
			CaloriesByMeal: map[MealType]float64{
				MealBreakfast: 600, MealLunch: 700, MealDinner: 800, MealSnack: 300,
			},
		},
		Windows: Windows{
			Pre:    PreWindow{Applicable: true, TargetCarbs: 60, ActualCarbs: 70},
			During: DuringWindow{Applicable: true, TargetCarbsPerHour: 60, ActualCarbsPerHour: 45},
			Post:   PostWindow{Applicable: true, TargetCarbs: 80, TargetProtein: 30, ActualCarbs: 90, ActualProtein: 20},
		},
		Training: TrainingContext{
			PlannedMinutes: 90, ActualMinutes: 80,
			PlannedType: "run", ActualType: "Run",
			PlannedIntensity: 3, ActualIntensity: 3,
			HasHeartRate: true,
		},
		Flags: Flags{StreakDays: 4, HydrationMet: true},
	}

	res, err := DailyScore(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 80, res.Nutrition.Macros.Total, 1e-9)
	assert.InDelta(t, 70, res.Nutrition.Timing.Total, 1e-9)
	assert.InDelta(t, 79.5, res.Nutrition.Total, 1e-9)
	assert.InDelta(t, 80, res.Training.Total, 1e-9)
	assert.Equal(t, 6.0, res.Adjustments.Bonus)
	assert.Equal(t, -5.0, res.Adjustments.Penalty)
	// 79.5*0.6 + 80*0.4 + 6 - 5 = 80.7
	assert.Equal(t, 81, res.Score)
}

func TestDailyScore_UnknownLoad(t *testing.T) {
	ctx := exactRestDay()
	ctx.Target.Load = "tempo"

	_, err := DailyScore(ctx)
	require.ErrorIs(t, err, ErrUnknownLoad)
}

func TestDailyScore_AlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	loads := []Load{LoadRest, LoadEasy, LoadModerate, LoadLong, LoadQuality}
	meals := []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

	for i := 0; i < 2000; i++ {
		ctx := Context{
			Target: DayTarget{
				Load: loads[rng.Intn(len(loads))],
				Macros: Macros{
					Calories: rng.Float64() * 4000,
					Protein:  rng.Float64() * 250,
					Carbs:    rng.Float64() * 600,
					Fat:      rng.Float64() * 150,
				},
			},
			Actual: DayActual{
				Macros: Macros{
					Calories: rng.Float64() * 5000,
					Protein:  rng.Float64() * 300,
					Carbs:    rng.Float64() * 700,
					Fat:      rng.Float64() * 200,
				},
				Meals: meals[:rng.Intn(len(meals)+1)],
				CaloriesByMeal: map[MealType]float64{
					MealBreakfast: rng.Float64() * 1500,
					MealDinner:    rng.Float64() * 1500,
				},
			},
			Windows: Windows{
				Pre:    PreWindow{Applicable: rng.Intn(2) == 0, TargetCarbs: rng.Float64() * 100, ActualCarbs: rng.Float64() * 100},
				During: DuringWindow{Applicable: rng.Intn(2) == 0, TargetCarbsPerHour: rng.Float64() * 90, ActualCarbsPerHour: rng.Float64() * 90},
				Post:   PostWindow{Applicable: rng.Intn(2) == 0, TargetCarbs: rng.Float64() * 100, TargetProtein: rng.Float64() * 40, ActualCarbs: rng.Float64() * 100, ActualProtein: rng.Float64() * 40},
			},
			Training: TrainingContext{
				PlannedMinutes:   rng.Float64() * 240,
				ActualMinutes:    rng.Float64() * 240,
				PlannedType:      "run",
				ActualType:       []string{"run", "ride", ""}[rng.Intn(3)],
				PlannedIntensity: rng.Intn(6),
				ActualIntensity:  rng.Intn(6),
				HasHeartRate:     rng.Intn(2) == 0,
			},
			Flags: Flags{StreakDays: rng.Intn(14), HydrationMet: rng.Intn(2) == 0},
		}

		res, err := DailyScore(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, res.Score, 0)
		require.LessOrEqual(t, res.Score, 100)
		require.LessOrEqual(t, res.Adjustments.Bonus, 10.0)
		require.GreaterOrEqual(t, res.Adjustments.Penalty, -15.0)
	}
}

func TestLoadWeights(t *testing.T) {
	tests := []struct {
		load Load
		want Weights
	}{
		{LoadRest, Weights{1.0, 0.0}},
		{LoadEasy, Weights{0.7, 0.3}},
		{LoadModerate, Weights{0.6, 0.4}},
		{LoadLong, Weights{0.55, 0.45}},
		{LoadQuality, Weights{0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(string(tt.load), func(t *testing.T) {
			got, err := LoadWeights(tt.load)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLoad(t *testing.T) {
	l, err := ParseLoad(" Quality ")
	require.NoError(t, err)
	assert.Equal(t, LoadQuality, l)

	_, err = ParseLoad("recovery")
	assert.ErrorIs(t, err, ErrUnknownLoad)
}

func TestWeeklyScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   int
	}{
		{"empty", nil, 0},
		{"clamps and rounds", []float64{100, 99.6, -5, 120, 50.4, 70, 80}, 500},
		{"sums rather than averages", []float64{70, 70, 70, 70, 70, 70, 70}, 490},
		{"only first seven count", []float64{10, 10, 10, 10, 10, 10, 10, 90}, 70},
		{"partial week", []float64{80, 90}, 170},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeeklyScore(tt.scores))
		})
	}
}

func TestZoneForHeartRate(t *testing.T) {
	tests := []struct {
		hr   float64
		want int
	}{
		{0, 0},
		{100, 1},
		{120, 2},
		{140, 3},
		{160, 4},
		{180, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneForHeartRate(tt.hr, 190), "hr=%v", tt.hr)
	}
	assert.Equal(t, 0, ZoneForHeartRate(150, 0))
}
