package evaluator

import (
	"math"

	"dynastybot/internal/stats"
)

// Threshold centers for the lower-is-better scoring categories. A raw
// sign-weighted product would punish every ERA equally per run, so these
// are scored as deviation from a center instead: below it earns points,
// above it loses them.
const (
	ERAThreshold  = 3.5
	WHIPThreshold = 1.2
)

// FantasyScore is the weighted sum of the league scoring categories.
// Categories the record doesn't carry contribute nothing; they are not
// zero-filled. The sum is deliberately not averaged: fantasy value is a
// total-production number.
func FantasyScore(rec stats.Record, weights map[string]float64) float64 {
	score := 0.0
	for category, weight := range weights {
		value, ok := rec.Get(category)
		if !ok {
			continue
		}
		switch category {
		case "ERA":
			score += (ERAThreshold - value) * math.Abs(weight)
		case "WHIP":
			score += (WHIPThreshold - value) * math.Abs(weight)
		default:
			score += value * weight
		}
	}
	return round2(score)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
