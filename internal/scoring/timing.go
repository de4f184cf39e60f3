package scoring

import "math"

const (
	preWeight    = 0.40
	duringWeight = 0.40
	postWeight   = 0.20

	// Share of a window target that counts as met.
	windowMetShare = 0.80

	duringFullBand = 10.0 // g/hr off target still worth 100
	duringZeroBand = 30.0 // g/hr off target worth 0
)

// TimingBreakdown holds the window sub-scores. A nil window was not applicable.
type TimingBreakdown struct {
	Pre    *float64 `bson:"pre,omitempty" json:"pre,omitempty"`
	During *float64 `bson:"during,omitempty" json:"during,omitempty"`
	Post   *float64 `bson:"post,omitempty" json:"post,omitempty"`
	Total  float64  `bson:"total" json:"total"`
}

// AllMet reports whether at least one window applied and every applicable one scored 100.
func (t TimingBreakdown) AllMet() bool {
	applied := false
	for _, s := range []*float64{t.Pre, t.During, t.Post} {
		if s == nil {
			continue
		}
		applied = true
		if *s < 100 {
			return false
		}
	}
	return applied
}

func metShare(actual, target float64) bool {
	if target <= 0 {
		return true
	}
	return actual >= target*windowMetShare
}

// PreWindowPoints is binary: 100 when at least 80% of the target CHO was eaten.
func PreWindowPoints(w PreWindow) float64 {
	if metShare(w.ActualCarbs, w.TargetCarbs) {
		return 100
	}
	return 0
}

// DuringWindowPoints interpolates linearly between ±10 g/hr (100) and ±30 g/hr (0).
func DuringWindowPoints(w DuringWindow) float64 {
	diff := math.Abs(w.ActualCarbsPerHour - w.TargetCarbsPerHour)
	switch {
	case diff <= duringFullBand:
		return 100
	case diff >= duringZeroBand:
		return 0
	default:
		return 100 * (duringZeroBand - diff) / (duringZeroBand - duringFullBand)
	}
}

// PostWindowPoints is binary on both the CHO and protein targets.
func PostWindowPoints(w PostWindow) float64 {
	if metShare(w.ActualCarbs, w.TargetCarbs) && metShare(w.ActualProtein, w.TargetProtein) {
		return 100
	}
	return 0
}

// TimingScore combines the applicable windows 40/40/20, renormalised over
// the windows that apply. With no applicable window the score is 100.
func TimingScore(w Windows) TimingBreakdown {
	var b TimingBreakdown
	var sum, weight float64

	if w.Pre.Applicable {
		p := PreWindowPoints(w.Pre)
		b.Pre = &p
		sum += p * preWeight
		weight += preWeight
	}
	if w.During.Applicable {
		d := DuringWindowPoints(w.During)
		b.During = &d
		sum += d * duringWeight
		weight += duringWeight
	}
	if w.Post.Applicable {
		p := PostWindowPoints(w.Post)
		b.Post = &p
		sum += p * postWeight
		weight += postWeight
	}

	if weight == 0 {
		b.Total = 100
		return b
	}
	b.Total = sum / weight
	return b
}
