package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivitySource records where a training activity came from.
type ActivitySource string

const (
	SourceManual    ActivitySource = "manual"
	SourceStrava    ActivitySource = "strava"
	SourceGoogleFit ActivitySource = "google_fit"
)

// TrainingActivity is a completed session.
type TrainingActivity struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Date            string             `bson:"date" json:"date"` // YYYY-MM-DD of StartTime (UTC)
	StartTime       time.Time          `bson:"startTime" json:"startTime"`
	DurationMinutes float64            `bson:"durationMinutes" json:"durationMinutes"`
	Type            string             `bson:"type" json:"type"`
	AvgHeartRate    float64            `bson:"avgHeartRate,omitempty" json:"avgHeartRate,omitempty"`
	Intensity       int                `bson:"intensity,omitempty" json:"intensity,omitempty"` // HR zone 1-5, 0 when unknown
	Source          ActivitySource     `bson:"source" json:"source"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// HasHeartRate reports whether the activity carries heart-rate data.
func (a *TrainingActivity) HasHeartRate() bool {
	return a.AvgHeartRate > 0
}

// End returns when the session finished.
func (a *TrainingActivity) End() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes * float64(time.Minute)))
}
