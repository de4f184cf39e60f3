package scoring

// WeekDays is the number of daily scores WeeklyScore looks at.
const WeekDays = 7

// WeeklyScore adds up the first seven daily scores, each rounded and
// clamped to [0, 100]. The result is a total in [0, 700], not an average.
func WeeklyScore(scores []float64) int {
	if len(scores) > WeekDays {
		scores = scores[:WeekDays]
	}
	total := 0
	for _, s := range scores {
		total += clampRound(s)
	}
	return total
}
