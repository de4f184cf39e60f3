package scoring

import "math"

const (
	carbsWeight   = 0.50
	proteinWeight = 0.30
	fatWeight     = 0.20

	kcalPerGramFat = 9.0

	// Default fat floor as a share of target calories.
	defaultFatFloorShare = 0.20
)

// MacroBreakdown is the per-macro accuracy score.
type MacroBreakdown struct {
	Carbs           float64 `bson:"carbs" json:"carbs"`
	Protein         float64 `bson:"protein" json:"protein"`
	Fat             float64 `bson:"fat" json:"fat"`
	FatFloorApplied bool    `bson:"fatFloorApplied" json:"fatFloorApplied"`
	Total           float64 `bson:"total" json:"total"`
}

// AccuracyPoints maps a relative error to 100, 60, 20 or 0.
func AccuracyPoints(relErr float64) float64 {
	switch {
	case relErr <= 0.05:
		return 100
	case relErr <= 0.10:
		return 60
	case relErr <= 0.20:
		return 20
	default:
		return 0
	}
}

func macroPoints(actual, target float64) float64 {
	if target <= 0 {
		return 100
	}
	return AccuracyPoints(math.Abs(actual-target) / target)
}

// MacroScore scores carbs, protein and fat against their targets.
// Fat scores zero when the fat eaten falls under the floor, whatever its error.
func MacroScore(target DayTarget, actual Macros) MacroBreakdown {
	b := MacroBreakdown{
		Carbs:   macroPoints(actual.Carbs, target.Macros.Carbs),
		Protein: macroPoints(actual.Protein, target.Macros.Protein),
		Fat:     macroPoints(actual.Fat, target.Macros.Fat),
	}

	floor := target.MinFatKcal
	if floor <= 0 {
		// never above the plan's own fat
		floor = math.Min(target.Macros.Calories*defaultFatFloorShare, target.Macros.Fat*kcalPerGramFat)
	}
	if floor > 0 && actual.Fat*kcalPerGramFat < floor {
		b.Fat = 0
		b.FatFloorApplied = true
	}

	b.Total = b.Carbs*carbsWeight + b.Protein*proteinWeight + b.Fat*fatWeight
	return b
}
