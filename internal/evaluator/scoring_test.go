package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dynastybot/internal/stats"
)

func batterRecord() stats.Record {
	rec := stats.New("Test Batter", "OF")
	rec.Set("R", 80)
	rec.Set("RBI", 90)
	rec.Set("OBP", 0.360)
	rec.Set("SBN2", 10)
	rec.Set("XBS", 55)
	return rec
}

func TestFantasyScore_BatterDefaultWeights(t *testing.T) {
	score := FantasyScore(batterRecord(), DefaultWeights().BatterScoring)

	// 80 + 90 + 36 + 20 + 82.5
	assert.Equal(t, 308.5, score)
}

func TestFantasyScore_MissingCategoriesContributeNothing(t *testing.T) {
	rec := stats.New("Test Batter", "OF")
	rec.Set("R", 80)

	score := FantasyScore(rec, DefaultWeights().BatterScoring)

	assert.Equal(t, 80.0, score)
}

func TestFantasyScore_Linearity(t *testing.T) {
	weights := DefaultWeights().BatterScoring
	doubled := make(map[string]float64, len(weights))
	for k, v := range weights {
		doubled[k] = v * 2
	}

	rec := batterRecord()
	assert.Equal(t, 2*FantasyScore(rec, weights), FantasyScore(rec, doubled))
}

func TestFantasyScore_LowerIsBetterCategories(t *testing.T) {
	rec := stats.New("Test Pitcher", "SP")
	rec.Set("K", 200)
	rec.Set("ERA", 3.0)
	rec.Set("WHIP", 1.0)

	score := FantasyScore(rec, DefaultWeights().PitcherScoring)

	// 200 + (3.5-3.0)*20 + (1.2-1.0)*15
	assert.Equal(t, 213.0, score)

	// An ERA above the threshold costs points instead.
	rec.Set("ERA", 4.5)
	assert.Equal(t, 183.0, FantasyScore(rec, DefaultWeights().PitcherScoring))
}

func TestFantasyScore_EmptyWeights(t *testing.T) {
	assert.Equal(t, 0.0, FantasyScore(batterRecord(), nil))
}
