package scoring

import (
	"math"
	"strings"
)

const (
	completionFullBand    = 0.10
	completionPartialBand = 0.25

	// Component weights with and without heart-rate data.
	hrCompletionWeight = 0.50
	hrTypeWeight       = 0.20
	hrIntensityWeight  = 0.30

	noHRCompletionWeight = 0.70
	noHRTypeWeight       = 0.30
)

// TrainingBreakdown is the training side of the score.
type TrainingBreakdown struct {
	Completion float64  `bson:"completion" json:"completion"`
	TypeMatch  float64  `bson:"typeMatch" json:"typeMatch"`
	Intensity  *float64 `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Total      float64  `bson:"total" json:"total"`
}

// CompletionPoints maps actual/planned duration onto 100, 60 or 0.
func CompletionPoints(plannedMinutes, actualMinutes float64) float64 {
	if plannedMinutes <= 0 {
		return 100
	}
	off := math.Abs(1 - actualMinutes/plannedMinutes)
	switch {
	case off <= completionFullBand:
		return 100
	case off <= completionPartialBand:
		return 60
	default:
		return 0
	}
}

// TypeMatchPoints is 100 when the recorded session type matches the plan.
func TypeMatchPoints(planned, actual string) float64 {
	planned = strings.TrimSpace(planned)
	if planned == "" {
		return 100
	}
	if strings.EqualFold(planned, strings.TrimSpace(actual)) {
		return 100
	}
	return 0
}

// IntensityPoints compares zones: same zone 100, one zone off 60, else 0.
func IntensityPoints(planned, actual int) float64 {
	if planned <= 0 {
		return 100
	}
	if actual <= 0 {
		return 0
	}
	switch d := planned - actual; {
	case d == 0:
		return 100
	case d == 1 || d == -1:
		return 60
	default:
		return 0
	}
}

// TrainingScore combines completion, type match and, when heart-rate data
// backs the intensity, intensity.
func TrainingScore(t TrainingContext) TrainingBreakdown {
	b := TrainingBreakdown{
		Completion: CompletionPoints(t.PlannedMinutes, t.ActualMinutes),
		TypeMatch:  TypeMatchPoints(t.PlannedType, t.ActualType),
	}
	if !t.HasHeartRate {
		b.Total = b.Completion*noHRCompletionWeight + b.TypeMatch*noHRTypeWeight
		return b
	}
	i := IntensityPoints(t.PlannedIntensity, t.ActualIntensity)
	b.Intensity = &i
	b.Total = b.Completion*hrCompletionWeight + b.TypeMatch*hrTypeWeight + i*hrIntensityWeight
	return b
}
