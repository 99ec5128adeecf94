package evaluator

import (
	"math"

	"dynastybot/internal/stats"
)

// Fixed-scaling centers used when no league-average baseline is supplied.
const (
	ratioBaseline  = 0.700 // OPS / SLG center
	ratioScale     = 10.0
	kPerBBBaseline = 2.5
	xFIPBaseline   = 4.0
)

// PeripheralScore rates process quality. Each category present in both the
// record and the weight map contributes one term: relative deviation from
// the baseline when one exists with a nonzero value, otherwise a
// category-specific fixed scaling. The total is averaged over contributing
// categories, so unlike the fantasy score this is a per-category rate.
func PeripheralScore(rec stats.Record, weights map[string]float64, baseline *stats.Record) float64 {
	score := 0.0
	count := 0

	for category, weight := range weights {
		value, ok := rec.Get(category)
		if !ok {
			continue
		}

		if baseline != nil {
			if avg, ok := baseline.Get(category); ok && avg != 0 {
				score += (value - avg) / avg * weight
				count++
				continue
			}
		}

		switch category {
		case "OPS", "SLG":
			score += (value - ratioBaseline) * weight * ratioScale
		case "K/BB":
			score += (value - kPerBBBaseline) * weight
		case "xFIP":
			score += (xFIPBaseline - value) * math.Abs(weight)
		default:
			// Percentage categories and anything else count as-is.
			score += value * weight
		}
		count++
	}

	if count > 0 {
		score /= float64(count)
	}
	return round2(score)
}
