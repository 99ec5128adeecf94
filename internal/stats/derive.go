package stats

import "math"

// League-tunable coefficients for the contribution categories. The relief
// and starting formulas are placeholders until the league publishes exact
// ones; retune here, not in the derivation code.
const (
	ReliefGameWeight   = 0.1
	StartWeight        = 0.5
	WinWeight          = 1.5
	InningsWeight      = 0.1
	CaughtStealingCost = 2.0
)

// DeriveBatter fills in the custom league categories a projection feed
// doesn't carry directly. Each derivation only fires when every input is
// present.
func DeriveBatter(r Record) {
	d2, ok2 := r.Get("2B")
	d3, ok3 := r.Get("3B")
	hr, okHR := r.Get("HR")
	if ok2 && ok3 && okHR && !r.Has("XBS") {
		xbs := d2 + d3 + hr
		if sh, ok := r.Get("SH"); ok {
			xbs += sh
		}
		r.Set("XBS", xbs)
	}

	if sb, ok := r.Get("SB"); ok && !r.Has("SBN2") {
		if cs, ok := r.Get("CS"); ok {
			r.Set("SBN2", sb-cs*CaughtStealingCost)
		}
	}

	if !r.Has("OPS") {
		obp, okO := r.Get("OBP")
		slg, okS := r.Get("SLG")
		if okO && okS {
			r.Set("OPS", obp+slg)
		}
	}
}

// DerivePitcher computes rate peripherals and the contribution categories.
func DerivePitcher(r Record) {
	if so, ok := r.Get("SO"); ok && !r.Has("K") {
		r.Set("K", so)
	}

	so, okSO := r.Get("SO")
	if !okSO {
		so, okSO = r.Get("K")
	}
	bf, okBF := r.Get("BF")
	if okSO && okBF && bf > 0 && !r.Has("K%") {
		r.Set("K%", round1(so/bf*100))
	}

	bb, okBB := r.Get("BB")
	if okBB && okBF && bf > 0 && !r.Has("BB%") {
		r.Set("BB%", round1(bb/bf*100))
	}

	if okSO && okBB && bb > 0 && !r.Has("K/BB") {
		r.Set("K/BB", round2(so/bb))
	}

	sv, okSV := r.Get("SV")
	hld, okHLD := r.Get("HLD")
	g, okG := r.Get("G")
	gs, okGS := r.Get("GS")
	if okSV && okHLD && okG && okGS && !r.Has("RPC") {
		r.Set("RPC", sv+hld+(g-gs)*ReliefGameWeight)
	}

	w, okW := r.Get("W")
	ip, okIP := r.Get("IP")
	if okGS && okW && okIP && !r.Has("SPC") {
		r.Set("SPC", gs*StartWeight+w*WinWeight+ip*InningsWeight)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
