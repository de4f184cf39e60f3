// Package nutrition sums planned targets and logged intake into the totals
// the daily score works on.
package nutrition

import (
	"nutrisync/nutrisync-app/internal/domain"
	"nutrisync/nutrisync-app/internal/scoring"
	"time"
)

// SumTargets adds up the macro targets of every planned meal.
func SumTargets(meals []domain.PlannedMeal) scoring.Macros {
	var total scoring.Macros
	for _, m := range meals {
		total = total.Add(m.Macros)
	}
	return total
}

// SumActuals adds up the macros of every food log.
func SumActuals(logs []domain.FoodLog) scoring.Macros {
	var total scoring.Macros
	for _, l := range logs {
		total = total.Add(l.Macros)
	}
	return total
}

// MealTypes returns the distinct meal types that have food logged, in first-seen order.
// Water-only entries do not count as a meal.
func MealTypes(logs []domain.FoodLog) []scoring.MealType {
	seen := make(map[scoring.MealType]bool)
	var types []scoring.MealType
	for _, l := range logs {
		if l.Macros.Calories <= 0 || seen[l.MealType] {
			continue
		}
		seen[l.MealType] = true
		types = append(types, l.MealType)
	}
	return types
}

// CaloriesByMeal totals calories per meal type.
func CaloriesByMeal(logs []domain.FoodLog) map[scoring.MealType]float64 {
	out := make(map[scoring.MealType]float64)
	for _, l := range logs {
		if l.Macros.Calories <= 0 {
			continue
		}
		out[l.MealType] += l.Macros.Calories
	}
	return out
}

// IntakeBetween sums the macros of logs eaten in [start, end).
func IntakeBetween(logs []domain.FoodLog, start, end time.Time) scoring.Macros {
	var total scoring.Macros
	for _, l := range logs {
		if l.EatenAt.Before(start) || !l.EatenAt.Before(end) {
			continue
		}
		total = total.Add(l.Macros)
	}
	return total
}

// Water totals logged water in millilitres.
func Water(logs []domain.FoodLog) float64 {
	total := 0.0
	for _, l := range logs {
		total += l.WaterMl
	}
	return total
}
