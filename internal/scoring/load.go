package scoring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLoad is returned for a training load outside the known set.
var ErrUnknownLoad = errors.New("unknown training load")

// Load is the categorical training load planned for a day.
type Load string

const (
	LoadRest     Load = "rest"
	LoadEasy     Load = "easy"
	LoadModerate Load = "moderate"
	LoadLong     Load = "long"
	LoadQuality  Load = "quality"
)

// Weights splits the final score between nutrition and training.
type Weights struct {
	Nutrition float64 `bson:"nutrition" json:"nutrition"`
	Training  float64 `bson:"training" json:"training"`
}

var loadWeights = map[Load]Weights{
	LoadRest:     {Nutrition: 1.0, Training: 0.0},
	LoadEasy:     {Nutrition: 0.7, Training: 0.3},
	LoadModerate: {Nutrition: 0.6, Training: 0.4},
	LoadLong:     {Nutrition: 0.55, Training: 0.45},
	LoadQuality:  {Nutrition: 0.5, Training: 0.5},
}

// ParseLoad normalises s and validates it as a Load.
func ParseLoad(s string) (Load, error) {
	l := Load(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLoad, s)
	}
	return l, nil
}

// Valid reports whether l is a known load.
func (l Load) Valid() bool {
	_, ok := loadWeights[l]
	return ok
}

// Hard reports whether the load counts as a hard day for underfueling.
func (l Load) Hard() bool {
	return l == LoadLong || l == LoadQuality
}

// RequiresSnack reports whether the structure score expects a snack.
func (l Load) RequiresSnack() bool {
	return l.Hard()
}

// LoadWeights returns the nutrition/training weights for l.
func LoadWeights(l Load) (Weights, error) {
	w, ok := loadWeights[l]
	if !ok {
		return Weights{}, fmt.Errorf("%w: %q", ErrUnknownLoad, l)
	}
	return w, nil
}
