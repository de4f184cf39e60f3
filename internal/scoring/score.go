package scoring

import "math"

const (
	nutritionMacroWeight     = 0.50
	nutritionTimingWeight    = 0.35
	nutritionStructureWeight = 0.15
)

// NutritionBreakdown is the nutrition side of the score.
type NutritionBreakdown struct {
	Macros    MacroBreakdown  `bson:"macros" json:"macros"`
	Timing    TimingBreakdown `bson:"timing" json:"timing"`
	Structure float64         `bson:"structure" json:"structure"`
	Total     float64         `bson:"total" json:"total"`
}

// Result is the unified daily score together with every term behind it.
type Result struct {
	Score       int                `bson:"score" json:"score"`
	Load        Load               `bson:"load" json:"load"`
	Weights     Weights            `bson:"weights" json:"weights"`
	Nutrition   NutritionBreakdown `bson:"nutrition" json:"nutrition"`
	Training    TrainingBreakdown  `bson:"training" json:"training"`
	Adjustments AdjustmentSummary  `bson:"adjustments" json:"adjustments"`
}

// NutritionScore combines macros, timing and structure 50/35/15.
func NutritionScore(ctx Context) NutritionBreakdown {
	b := NutritionBreakdown{
		Macros:    MacroScore(ctx.Target, ctx.Actual.Macros),
		Timing:    TimingScore(ctx.Windows),
		Structure: StructureScore(ctx.Target.Load, ctx.Actual),
	}
	b.Total = b.Macros.Total*nutritionMacroWeight +
		b.Timing.Total*nutritionTimingWeight +
		b.Structure*nutritionStructureWeight
	return b
}

// DailyScore computes the unified 0-100 score for one day. It only fails
// when the target load is unknown.
func DailyScore(ctx Context) (Result, error) {
	w, err := LoadWeights(ctx.Target.Load)
	if err != nil {
		return Result{}, err
	}

	r := Result{
		Load:      ctx.Target.Load,
		Weights:   w,
		Nutrition: NutritionScore(ctx),
		Training:  TrainingScore(ctx.Training),
	}
	r.Adjustments = Adjustments(ctx, r.Nutrition.Timing)

	raw := r.Nutrition.Total*w.Nutrition + r.Training.Total*w.Training +
		r.Adjustments.Bonus + r.Adjustments.Penalty
	r.Score = clampRound(raw)
	return r, nil
}

func clampRound(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v)
	switch {
	case r < 0:
		return 0
	case r > 100:
		return 100
	}
	return int(r)
}
