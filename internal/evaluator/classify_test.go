package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dynastybot/internal/models"
	"dynastybot/internal/stats"
)

func midSampleBatter() stats.Record {
	rec := stats.New("Test Batter", "OF")
	rec.Set("PA", 200)
	return rec
}

func TestClassify_RatingThresholds(t *testing.T) {
	tests := []struct {
		name       string
		fantasy    float64
		peripheral float64
		rating     models.ValueRating
		confidence float64
	}{
		{"aligned", 10, 0.0, models.RatingAligned, 0.85},
		{"slight overperformance", 45, 0.0, models.RatingSlightOverperformance, 0.65},
		{"overperformance", 60, 0.0, models.RatingOverperformance, 0.75},
		{"slight underperformance", 10, 0.5, models.RatingSlightUnderperformance, 0.65},
		{"underperformance", 10, 0.7, models.RatingUnderperformance, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rating, confidence, _ := Classify(midSampleBatter(), models.Batter, tt.fantasy, tt.peripheral)
			assert.Equal(t, tt.rating, rating)
			assert.Equal(t, tt.confidence, confidence)
		})
	}
}

func TestClassify_SampleSizeScaling(t *testing.T) {
	low := stats.New("Low Sample", "OF")
	low.Set("PA", 50)
	_, confidence, _ := Classify(low, models.Batter, 45, 0)
	assert.InDelta(t, 0.45, confidence, 1e-9) // 0.65 * 0.7, rounded

	high := stats.New("High Sample", "OF")
	high.Set("PA", 500)
	_, confidence, _ = Classify(high, models.Batter, 60, 0)
	assert.InDelta(t, 0.83, confidence, 1e-9) // 0.75 * 1.1

	negative := stats.New("Bad Feed", "OF")
	negative.Set("PA", -10)
	_, confidence, _ = Classify(negative, models.Batter, 45, 0)
	assert.GreaterOrEqual(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 1.0)
}

func TestClassify_PitcherSampleProxyIsInnings(t *testing.T) {
	rec := stats.New("Test Pitcher", "SP")
	rec.Set("IP", 150)

	_, confidence, _ := Classify(rec, models.Pitcher, 10, 0)

	assert.InDelta(t, 0.94, confidence, 1e-9) // 0.85 * 1.1, still within [0,1]
}

func TestClassify_ConfidenceAlwaysClamped(t *testing.T) {
	for _, pa := range []float64{-100, 0, 50, 200, 10000} {
		rec := stats.New("Test Batter", "OF")
		rec.Set("PA", pa)
		for _, fantasy := range []float64{-500, 0, 45, 1000} {
			_, confidence, _ := Classify(rec, models.Batter, fantasy, 0)
			assert.GreaterOrEqual(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 1.0)
		}
	}
}

func TestClassify_RatingFlagsAppended(t *testing.T) {
	_, _, flags := Classify(midSampleBatter(), models.Batter, 60, 0)
	assert.Contains(t, flags, "Fantasy > Peripherals")

	_, _, flags = Classify(midSampleBatter(), models.Batter, 10, 0.7)
	assert.Contains(t, flags, "Peripherals > Fantasy")
}

func TestClassify_BatterFlagBattery(t *testing.T) {
	rec := stats.New("Test Batter", "OF")
	rec.Set("PA", 200)
	rec.Set("OPS", 0.900)
	rec.Set("SB", 30)
	rec.Set("CS", 3)
	rec.Set("XBS", 60)
	rec.Set("Hard_Hit%", 48)
	rec.Set("Barrel%", 12)

	_, _, flags := Classify(rec, models.Batter, 10, 0)

	assert.Equal(t, []string{"Elite OPS", "Elite Base Stealer", "Power Hitter", "High Hard Hit%", "High Barrel%"}, flags)
}

func TestClassify_FlagRulesRequirePresence(t *testing.T) {
	rec := stats.New("Test Batter", "OF")
	rec.Set("PA", 200)
	rec.Set("SB", 30) // CS unknown: stolen-base efficiency can't be judged

	_, _, flags := Classify(rec, models.Batter, 10, 0)

	assert.NotContains(t, flags, "Elite Base Stealer")
	assert.NotContains(t, flags, "CS Risk")
}

func TestClassify_PitcherFlagBattery(t *testing.T) {
	rec := stats.New("Test Pitcher", "RP")
	rec.Set("IP", 65)
	rec.Set("K%", 30)
	rec.Set("BB%", 5)
	rec.Set("K/BB", 5.0)
	rec.Set("ERA", 2.0)
	rec.Set("WHIP", 1.1)
	rec.Set("SV", 35)
	rec.Set("xFIP", 3.2)

	_, _, flags := Classify(rec, models.Pitcher, 10, 0)

	// expected ERA = (1.1-0.8)*3 + 2.5 = 3.4; 2.0 is more than 0.5 below it.
	assert.Equal(t, []string{"Elite K%", "Elite Control", "Excellent K/BB", "ERA may regress", "Closer", "ERA outperforming xFIP"}, flags)
}

func TestClassify_Deterministic(t *testing.T) {
	rec := stats.New("Test Pitcher", "SP")
	rec.Set("IP", 150)
	rec.Set("K%", 30)
	rec.Set("ERA", 3.0)
	rec.Set("WHIP", 1.0)

	r1, c1, f1 := Classify(rec, models.Pitcher, 60, 0)
	r2, c2, f2 := Classify(rec, models.Pitcher, 60, 0)

	require.Equal(t, r1, r2)
	require.Equal(t, c1, c2)
	assert.Equal(t, f1, f2)
}
