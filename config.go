package padelelo

import "sort"

// BaseTier shrinks the flat base term of a match when the gap between the two
// team averages is strictly above Above.
type BaseTier struct {
	Above     float64 `yaml:"above"`
	Reduction float64 `yaml:"reduction"`
}

// Config carries every tunable coefficient of a rating update. It is read-only
// input to a single update call.
type Config struct {
	// Ratio is the rating gap at which the favourite is ten times as likely to win.
	Ratio float64 `yaml:"ratio"`
	// K multiplies the difference between outcome and expected score.
	K float64 `yaml:"k"`
	// Base is the flat per-event bonus for winners and penalty for losers.
	Base float64 `yaml:"base"`
	// FactorAvg is the weight of a player's own rating against the partner's.
	FactorAvg float64 `yaml:"factor_avg"`

	// OutcomeCompression squeezes the raw score share into the open unit interval.
	OutcomeCompression float64    `yaml:"outcome_compression"`
	BaseTiers          []BaseTier `yaml:"base_tiers"`

	NumLanes          int     `yaml:"num_lanes"`
	LaneMultiplierPct float64 `yaml:"lane_multiplier_pct"`
	EdgeCompensation  float64 `yaml:"edge_compensation"`
	// EdgeReach is how many lanes at each end of the ladder count as boundary lanes.
	EdgeReach int `yaml:"edge_reach"`

	FinalLanePenalty float64 `yaml:"final_lane_penalty"`
	FinalLaneBonus   float64 `yaml:"final_lane_bonus"`
	FinalLaneStep    float64 `yaml:"final_lane_step"`
}

// DefaultBaseTiers are the mismatch tiers used by league matches.
func DefaultBaseTiers() []BaseTier {
	return []BaseTier{
		{Above: 1000, Reduction: 15},
		{Above: 700, Reduction: 10},
		{Above: 400, Reduction: 5},
	}
}

// DefaultMatchConfig is the preset for fixed-team matches.
func DefaultMatchConfig() Config {
	return Config{
		Ratio:              400,
		K:                  32,
		Base:               50,
		FactorAvg:          0.5,
		OutcomeCompression: 0.9,
		BaseTiers:          DefaultBaseTiers(),
	}
}

// DefaultLadderConfig is the preset for americana rounds.
func DefaultLadderConfig() Config {
	return Config{
		Ratio:             600,
		K:                 32,
		Base:              15,
		FactorAvg:         0.7,
		NumLanes:          6,
		LaneMultiplierPct: 20,
		EdgeReach:         2,
		FinalLanePenalty:  10,
		FinalLaneStep:     200,
	}
}

func (c Config) validateCommon() error {
	if !validRatio(c.Ratio) {
		return &ConfigurationError{Field: "ratio", Value: c.Ratio, Reason: "must be > 0"}
	}
	if !(c.K >= 0) {
		return &ConfigurationError{Field: "k", Value: c.K, Reason: "must be >= 0"}
	}
	if !(c.FactorAvg >= 0 && c.FactorAvg <= 1) {
		return &ConfigurationError{Field: "factor_avg", Value: c.FactorAvg, Reason: "must be within [0, 1]"}
	}
	return nil
}

// ValidateMatch checks the coefficients used by team matches.
func (c Config) ValidateMatch() error {
	if err := c.validateCommon(); err != nil {
		return err
	}
	if !(c.OutcomeCompression > 0 && c.OutcomeCompression <= 1) {
		return &ConfigurationError{
			Field:  "outcome_compression",
			Value:  c.OutcomeCompression,
			Reason: "must be within (0, 1]",
		}
	}
	for _, t := range c.BaseTiers {
		if t.Above < 0 {
			return &ConfigurationError{Field: "base_tiers.above", Value: t.Above, Reason: "must be >= 0"}
		}
	}
	return nil
}

// ValidateLadder checks the coefficients used by ladder rounds.
func (c Config) ValidateLadder() error {
	if err := c.validateCommon(); err != nil {
		return err
	}
	if c.NumLanes < 1 {
		return &ConfigurationError{Field: "num_lanes", Value: c.NumLanes, Reason: "must be >= 1"}
	}
	if !(c.LaneMultiplierPct >= 0) {
		return &ConfigurationError{Field: "lane_multiplier_pct", Value: c.LaneMultiplierPct, Reason: "must be >= 0"}
	}
	if c.EdgeReach < 0 {
		return &ConfigurationError{Field: "edge_reach", Value: c.EdgeReach, Reason: "must be >= 0"}
	}
	if (c.FinalLanePenalty != 0 || c.FinalLaneBonus != 0) && !(c.FinalLaneStep > 0) {
		return &ConfigurationError{
			Field:  "final_lane_step",
			Value:  c.FinalLaneStep,
			Reason: "must be > 0 when a final lane penalty or bonus is set",
		}
	}
	return nil
}

// adjustedBase applies the first tier, highest threshold first, whose bound the
// rating gap exceeds.
func (c Config) adjustedBase(ratingDiff float64) float64 {
	tiers := make([]BaseTier, len(c.BaseTiers))
	copy(tiers, c.BaseTiers)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].Above > tiers[j].Above
	})
	for _, t := range tiers {
		if ratingDiff > t.Above {
			return c.Base - t.Reduction
		}
	}
	return c.Base
}
