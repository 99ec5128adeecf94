package evaluator

import (
	"math"

	"dynastybot/internal/models"
	"dynastybot/internal/stats"
)

// Gap classification thresholds. Fantasy totals run two orders of
// magnitude above peripheral rates, hence the normalization divisor.
const (
	fantasyNormDivisor = 100.0
	alignedGap         = 0.3
	extremeGap         = 0.5

	confidenceBase      = 0.5
	confidenceAligned   = 0.85
	confidenceExtreme   = 0.75
	confidenceSlight    = 0.65
	lowSampleScale      = 0.7
	highSampleScale     = 1.1
	batterLowSamplePA   = 100.0
	batterHighSamplePA  = 400.0
	pitcherLowSampleIP  = 30.0
	pitcherHighSampleIP = 100.0
)

// Stat-threshold flag rules. Informational only, independent of the
// rating; evaluated in a fixed order so output is reproducible.
const (
	eliteOPS        = 0.850
	lowOPS          = 0.650
	stealerMinSB    = 20.0
	stealerCSFrac   = 0.25
	csRiskFrac      = 0.5
	powerXBS        = 50.0
	highHardHit     = 45.0
	lowHardHit      = 30.0
	highBarrel      = 10.0
	eliteKPct       = 27.0
	lowKPct         = 18.0
	eliteBBPct      = 6.0
	poorBBPct       = 10.0
	excellentKPerBB = 4.0
	poorKPerBB      = 2.0
	closerSaves     = 20.0
	eraDivergence   = 0.5

	// Rough WHIP-implied ERA, a league-tunable luck heuristic.
	expectedERAWHIPBase  = 0.8
	expectedERAWHIPSlope = 3.0
	expectedERAIntercept = 2.5
)

// Classify compares the two scores and rates the gap between results and
// process, with a confidence scaled by the player's sample size.
func Classify(rec stats.Record, playerType models.PlayerType, fantasyScore, peripheralScore float64) (models.ValueRating, float64, []string) {
	flags := statFlags(rec, playerType)

	gap := fantasyScore/fantasyNormDivisor - peripheralScore

	rating := models.RatingUnknown
	confidence := confidenceBase
	switch {
	case math.Abs(gap) < alignedGap:
		rating = models.RatingAligned
		confidence = confidenceAligned
	case gap > extremeGap:
		rating = models.RatingOverperformance
		confidence = confidenceExtreme
		flags = append(flags, "Fantasy > Peripherals")
	case gap < -extremeGap:
		rating = models.RatingUnderperformance
		confidence = confidenceExtreme
		flags = append(flags, "Peripherals > Fantasy")
	case gap > 0:
		rating = models.RatingSlightOverperformance
		confidence = confidenceSlight
	default:
		rating = models.RatingSlightUnderperformance
		confidence = confidenceSlight
	}

	confidence *= sampleScale(rec, playerType)
	confidence = clamp01(round2(confidence))

	return rating, confidence, flags
}

func sampleScale(rec stats.Record, playerType models.PlayerType) float64 {
	var proxy string
	var low, high float64
	if playerType == models.Pitcher {
		proxy, low, high = "IP", pitcherLowSampleIP, pitcherHighSampleIP
	} else {
		proxy, low, high = "PA", batterLowSamplePA, batterHighSamplePA
	}
	v, ok := rec.Get(proxy)
	if !ok {
		return 1.0
	}
	switch {
	case v < low:
		return lowSampleScale
	case v > high:
		return highSampleScale
	}
	return 1.0
}

// statFlags runs the fixed battery of threshold checks. A rule only fires
// when every stat it reads is present; unknown is never coerced to zero.
func statFlags(rec stats.Record, playerType models.PlayerType) []string {
	if playerType == models.Pitcher {
		return pitcherFlags(rec)
	}
	return batterFlags(rec)
}

func batterFlags(rec stats.Record) []string {
	var flags []string

	if ops, ok := rec.Get("OPS"); ok {
		if ops > eliteOPS {
			flags = append(flags, "Elite OPS")
		} else if ops < lowOPS {
			flags = append(flags, "Low OPS")
		}
	}

	sb, okSB := rec.Get("SB")
	cs, okCS := rec.Get("CS")
	if okSB && okCS {
		if sb > stealerMinSB && cs < sb*stealerCSFrac {
			flags = append(flags, "Elite Base Stealer")
		} else if cs > sb*csRiskFrac {
			flags = append(flags, "CS Risk")
		}
	}

	if xbs, ok := rec.Get("XBS"); ok && xbs > powerXBS {
		flags = append(flags, "Power Hitter")
	}

	if hh, ok := rec.Get("Hard_Hit%"); ok {
		if hh > highHardHit {
			flags = append(flags, "High Hard Hit%")
		} else if hh < lowHardHit {
			flags = append(flags, "Low Hard Hit%")
		}
	}

	if barrel, ok := rec.Get("Barrel%"); ok && barrel > highBarrel {
		flags = append(flags, "High Barrel%")
	}

	return flags
}

func pitcherFlags(rec stats.Record) []string {
	var flags []string

	if kPct, ok := rec.Get("K%"); ok {
		if kPct > eliteKPct {
			flags = append(flags, "Elite K%")
		} else if kPct < lowKPct {
			flags = append(flags, "Low K%")
		}
	}

	if bbPct, ok := rec.Get("BB%"); ok {
		if bbPct < eliteBBPct {
			flags = append(flags, "Elite Control")
		} else if bbPct > poorBBPct {
			flags = append(flags, "Control Issues")
		}
	}

	if kbb, ok := rec.Get("K/BB"); ok {
		if kbb > excellentKPerBB {
			flags = append(flags, "Excellent K/BB")
		} else if kbb < poorKPerBB {
			flags = append(flags, "Poor K/BB")
		}
	}

	era, okERA := rec.Get("ERA")
	whip, okWHIP := rec.Get("WHIP")
	if okERA && okWHIP {
		expected := (whip-expectedERAWHIPBase)*expectedERAWHIPSlope + expectedERAIntercept
		if era < expected-eraDivergence {
			flags = append(flags, "ERA may regress")
		} else if era > expected+eraDivergence {
			flags = append(flags, "ERA may improve")
		}
	}

	if sv, ok := rec.Get("SV"); ok && sv > closerSaves {
		flags = append(flags, "Closer")
	}

	if xfip, ok := rec.Get("xFIP"); ok && okERA {
		if era < xfip-eraDivergence {
			flags = append(flags, "ERA outperforming xFIP")
		} else if era > xfip+eraDivergence {
			flags = append(flags, "ERA underperforming xFIP")
		}
	}

	return flags
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
