// internal/domain/meal_plan.go
package domain

import (
	"nutrisync/nutrisync-app/internal/scoring"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlannedMeal is one meal of the day's plan with its macro targets.
type PlannedMeal struct {
	Type   scoring.MealType `bson:"type" json:"type"`
	Name   string           `bson:"name,omitempty" json:"name,omitempty"` // e.g. "Overnight oats"
	Macros scoring.Macros   `bson:"macros" json:"macros"`
}

// PlannedSession is the training session the plan fuels.
type PlannedSession struct {
	Start           time.Time `bson:"start" json:"start"`
	DurationMinutes float64   `bson:"durationMinutes" json:"durationMinutes"`
	Type            string    `bson:"type" json:"type"`                               // e.g. "run", "ride"
	Intensity       int       `bson:"intensity,omitempty" json:"intensity,omitempty"` // HR zone 1-5
}

// FuelingTargets sets the carbohydrate/protein goals around the session.
// A zero target switches the window off.
type FuelingTargets struct {
	PreCarbs           float64 `bson:"preCarbs" json:"preCarbs"`
	PreWindowMinutes   int     `bson:"preWindowMinutes" json:"preWindowMinutes"`
	DuringCarbsPerHour float64 `bson:"duringCarbsPerHour" json:"duringCarbsPerHour"`
	PostCarbs          float64 `bson:"postCarbs" json:"postCarbs"`
	PostProtein        float64 `bson:"postProtein" json:"postProtein"`
	PostWindowMinutes  int     `bson:"postWindowMinutes" json:"postWindowMinutes"`
}

// DailyMealPlan is the nutrition and training plan for one athlete on one day.
type DailyMealPlan struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID            primitive.ObjectID `bson:"userId" json:"userId"`
	Date              string             `bson:"date" json:"date"` // YYYY-MM-DD
	Load              scoring.Load       `bson:"load" json:"load"`
	Meals             []PlannedMeal      `bson:"meals" json:"meals"`
	Session           *PlannedSession    `bson:"session,omitempty" json:"session,omitempty"`
	Fueling           FuelingTargets     `bson:"fueling" json:"fueling"`
	HydrationTargetMl float64            `bson:"hydrationTargetMl,omitempty" json:"hydrationTargetMl,omitempty"`
	MinFatKcal        float64            `bson:"minFatKcal,omitempty" json:"minFatKcal,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
