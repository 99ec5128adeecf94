// Package evaluator implements the dual-value analysis: league scoring
// output (the results) against peripheral indicators (the process), plus
// the classification of the gap between them.
package evaluator

import (
	"sort"
	"strings"

	"dynastybot/internal/models"
	"dynastybot/internal/stats"
)

type Evaluator struct {
	weights Weights
}

func New(weights Weights) *Evaluator {
	return &Evaluator{weights: weights}
}

// Evaluate runs the full pipeline for one player: fantasy score,
// peripheral score, gap rating. baseline may be nil; when present it is
// the league-average stat line peripherals are normalized against.
func (e *Evaluator) Evaluate(rec stats.Record, playerType models.PlayerType, baseline *stats.Record) models.PlayerValue {
	name := rec.Name
	if name == "" {
		name = "Unknown"
	}
	position := rec.Position
	if position == "" {
		if playerType == models.Pitcher {
			position = "P"
		} else {
			position = "Unknown"
		}
	}

	if rec.Len() == 0 {
		// Nothing to score; report the row rather than dropping it.
		return models.PlayerValue{
			PlayerName:  name,
			Position:    position,
			ValueRating: models.RatingUnknown,
		}
	}

	scoring, peripheral := e.weights.BatterScoring, e.weights.BatterPeripheral
	if playerType == models.Pitcher {
		scoring, peripheral = e.weights.PitcherScoring, e.weights.PitcherPeripheral
	}

	fantasyScore := FantasyScore(rec, scoring)
	peripheralScore := PeripheralScore(rec, peripheral, baseline)
	rating, confidence, flags := Classify(rec, playerType, fantasyScore, peripheralScore)

	return models.PlayerValue{
		PlayerName:      name,
		Position:        position,
		FantasyScore:    fantasyScore,
		PeripheralScore: peripheralScore,
		ValueRating:     rating,
		Confidence:      confidence,
		Flags:           flags,
	}
}

// EvaluateAll evaluates every record independently and returns one value
// per input row, in input order. Rows never influence each other, so the
// output is stable across reruns.
func (e *Evaluator) EvaluateAll(recs []stats.Record, playerType models.PlayerType, baseline *stats.Record) []models.PlayerValue {
	values := make([]models.PlayerValue, len(recs))
	for i, rec := range recs {
		values[i] = e.Evaluate(rec, playerType, baseline)
	}
	return values
}

// BuyLowCandidates filters for players whose process beats their results:
// any underperformance rating at or above the confidence floor, best
// peripherals first.
func (e *Evaluator) BuyLowCandidates(recs []stats.Record, playerType models.PlayerType, minConfidence float64) []models.PlayerValue {
	values := e.EvaluateAll(recs, playerType, nil)
	candidates := filterRated(values, string(models.RatingUnderperformance), minConfidence)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PeripheralScore > candidates[j].PeripheralScore
	})
	return candidates
}

// SellHighCandidates filters for players whose results outrun their
// process, best fantasy output first.
func (e *Evaluator) SellHighCandidates(recs []stats.Record, playerType models.PlayerType, minConfidence float64) []models.PlayerValue {
	values := e.EvaluateAll(recs, playerType, nil)
	candidates := filterRated(values, string(models.RatingOverperformance), minConfidence)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FantasyScore > candidates[j].FantasyScore
	})
	return candidates
}

// filterRated keeps rows whose rating contains the given substring, so
// "Underperformance" also matches its "Slight" variant.
func filterRated(values []models.PlayerValue, rating string, minConfidence float64) []models.PlayerValue {
	var out []models.PlayerValue
	for _, v := range values {
		if strings.Contains(string(v.ValueRating), rating) && v.Confidence >= minConfidence {
			out = append(out, v)
		}
	}
	return out
}

// Compare runs the pipeline for two players of the same type. All three
// verdicts use strict greater-than, so a dead tie deliberately goes to the
// second player.
func (e *Evaluator) Compare(rec1, rec2 stats.Record, playerType models.PlayerType) models.Comparison {
	v1 := e.Evaluate(rec1, playerType, nil)
	v2 := e.Evaluate(rec2, playerType, nil)

	pick := func(first bool) string {
		if first {
			return v1.PlayerName
		}
		return v2.PlayerName
	}

	return models.Comparison{
		Player1:             v1,
		Player2:             v2,
		FantasyAdvantage:    pick(v1.FantasyScore > v2.FantasyScore),
		PeripheralAdvantage: pick(v1.PeripheralScore > v2.PeripheralScore),
		Recommended:         pick(v1.FantasyScore+v1.PeripheralScore > v2.FantasyScore+v2.PeripheralScore),
	}
}
