package scoring

// Upper bounds (share of max HR) of zones 1-4; anything above is zone 5.
var zoneCeilings = []float64{0.60, 0.70, 0.80, 0.90}

// ZoneForHeartRate maps an average heart rate to an intensity zone 1-5 by
// percentage of max HR. It returns 0 when either value is missing.
func ZoneForHeartRate(avgHR, maxHR float64) int {
	if avgHR <= 0 || maxHR <= 0 {
		return 0
	}
	pct := avgHR / maxHR
	for i, ceil := range zoneCeilings {
		if pct < ceil {
			return i + 1
		}
	}
	return len(zoneCeilings) + 1
}
