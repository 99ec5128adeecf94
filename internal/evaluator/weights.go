package evaluator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the full scoring configuration for one league: which
// categories count, and by how much, on both sides of the dual-value
// analysis. Construct once and treat as read-only; it is safe to share
// across concurrent evaluations.
type Weights struct {
	BatterScoring     map[string]float64 `yaml:"batter_scoring_weights"`
	PitcherScoring    map[string]float64 `yaml:"pitcher_scoring_weights"`
	BatterPeripheral  map[string]float64 `yaml:"batter_peripheral_weights"`
	PitcherPeripheral map[string]float64 `yaml:"pitcher_peripheral_weights"`
}

// DefaultWeights returns the house league settings: R/RBI/OBP/SBN2/XBS for
// batters, K/ERA/WHIP/RPC/SPC for pitchers. OBP is scaled up because it
// lives on a 0-1 scale; ERA and WHIP carry negative weights because lower
// is better.
func DefaultWeights() Weights {
	return Weights{
		BatterScoring: map[string]float64{
			"R":    1.0,
			"RBI":  1.0,
			"OBP":  100.0,
			"SBN2": 2.0,
			"XBS":  1.5,
		},
		PitcherScoring: map[string]float64{
			"K":    1.0,
			"ERA":  -20.0,
			"WHIP": -15.0,
			"RPC":  3.0,
			"SPC":  3.0,
		},
		BatterPeripheral: map[string]float64{
			"OPS":       1.0,
			"SLG":       0.8,
			"K%":        -0.5,
			"BB%":       0.5,
			"Hard_Hit%": 1.2,
			"Barrel%":   1.5,
		},
		PitcherPeripheral: map[string]float64{
			"K%":        1.5,
			"BB%":       -1.0,
			"K/BB":      1.2,
			"SwStr%":    1.0,
			"Hard_Hit%": -1.0,
			"xFIP":      -10.0,
		},
	}
}

// LoadWeights reads a league weight file, filling any map the file omits
// from the defaults.
func LoadWeights(path string) (Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("reading weights file %s: %w", path, err)
	}

	var w Weights
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("parsing weights file %s: %w", path, err)
	}

	defaults := DefaultWeights()
	if len(w.BatterScoring) == 0 {
		w.BatterScoring = defaults.BatterScoring
	}
	if len(w.PitcherScoring) == 0 {
		w.PitcherScoring = defaults.PitcherScoring
	}
	if len(w.BatterPeripheral) == 0 {
		w.BatterPeripheral = defaults.BatterPeripheral
	}
	if len(w.PitcherPeripheral) == 0 {
		w.PitcherPeripheral = defaults.PitcherPeripheral
	}
	return w, nil
}
