package scoring

const (
	maxBonus   = 10.0
	maxPenalty = -15.0

	windowSyncBonus  = 5.0
	shortStreakBonus = 3.0
	longStreakBonus  = 5.0
	hydrationBonus   = 3.0

	shortStreakDays = 3
	longStreakDays  = 7

	underfuelingPenalty = -8.0
	bigDeficitPenalty   = -7.0
	missedPostPenalty   = -5.0
	underfuelingShare   = 0.80
	bigDeficitKcal      = 750.0
	longSessionMinutes  = 90.0
)

// Adjustment codes, stable for clients that explain the score.
const (
	AdjustWindowSync   = "fueling_window_sync"
	AdjustStreak       = "streak"
	AdjustHydration    = "hydration"
	AdjustUnderfueling = "underfueling_hard_day"
	AdjustBigDeficit   = "big_deficit_long_session"
	AdjustMissedPost   = "missed_post_window"
)

// Adjustment is a single bonus (positive) or penalty (negative) line.
type Adjustment struct {
	Code   string  `bson:"code" json:"code"`
	Points float64 `bson:"points" json:"points"`
}

// AdjustmentSummary holds the capped totals and the lines behind them.
type AdjustmentSummary struct {
	Bonus   float64      `bson:"bonus" json:"bonus"`
	Penalty float64      `bson:"penalty" json:"penalty"`
	Items   []Adjustment `bson:"items" json:"items"`
}

// Adjustments evaluates bonuses (capped at +10) and penalties (capped at -15).
func Adjustments(ctx Context, timing TimingBreakdown) AdjustmentSummary {
	var s AdjustmentSummary
	add := func(code string, pts float64) {
		s.Items = append(s.Items, Adjustment{Code: code, Points: pts})
		if pts > 0 {
			s.Bonus += pts
		} else {
			s.Penalty += pts
		}
	}

	if timing.AllMet() {
		add(AdjustWindowSync, windowSyncBonus)
	}
	switch {
	case ctx.Flags.StreakDays >= longStreakDays:
		add(AdjustStreak, longStreakBonus)
	case ctx.Flags.StreakDays >= shortStreakDays:
		add(AdjustStreak, shortStreakBonus)
	}
	if ctx.Flags.HydrationMet {
		add(AdjustHydration, hydrationBonus)
	}

	targetKcal := ctx.Target.Macros.Calories
	actualKcal := ctx.Actual.Macros.Calories
	if ctx.Target.Load.Hard() && targetKcal > 0 && actualKcal < targetKcal*underfuelingShare {
		add(AdjustUnderfueling, underfuelingPenalty)
	}
	if targetKcal-actualKcal >= bigDeficitKcal && ctx.Training.PlannedMinutes >= longSessionMinutes {
		add(AdjustBigDeficit, bigDeficitPenalty)
	}
	if timing.Post != nil && *timing.Post < 100 {
		add(AdjustMissedPost, missedPostPenalty)
	}

	if s.Bonus > maxBonus {
		s.Bonus = maxBonus
	}
	if s.Penalty < maxPenalty {
		s.Penalty = maxPenalty
	}
	return s
}
