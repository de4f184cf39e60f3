package scoring

const (
	pointsPerMeal = 25.0

	// Structure cap when a single meal dominates the day.
	dominantMealCap   = 70.0
	dominantMealShare = 0.60
)

var mainMeals = []MealType{MealBreakfast, MealLunch, MealDinner}

// StructureScore rewards a complete meal pattern: 25 points per main meal
// and 25 for a snack, which is granted when the load does not require one.
func StructureScore(load Load, actual DayActual) float64 {
	present := make(map[MealType]bool, len(actual.Meals))
	for _, m := range actual.Meals {
		present[m] = true
	}

	score := 0.0
	for _, m := range mainMeals {
		if present[m] {
			score += pointsPerMeal
		}
	}
	if !load.RequiresSnack() || present[MealSnack] {
		score += pointsPerMeal
	}

	if dominantMeal(actual) && score > dominantMealCap {
		score = dominantMealCap
	}
	return score
}

func dominantMeal(actual DayActual) bool {
	total := 0.0
	for _, kcal := range actual.CaloriesByMeal {
		total += kcal
	}
	if total <= 0 {
		return false
	}
	for _, kcal := range actual.CaloriesByMeal {
		if kcal > total*dominantMealShare {
			return true
		}
	}
	return false
}
