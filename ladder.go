package padelelo

import (
	"fmt"
	"math"
)

// LadderDeltas computes the rating change of every player of an americana
// round. movements[i] belongs to pairs[i]; the result keeps that order.
func LadderDeltas(pairs []Pair, movements []LaneMovement, cfg Config) ([]Pair, error) {
	if err := cfg.ValidateLadder(); err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, &InvalidInputError{Field: "pairs", Reason: "round has no pairs"}
	}
	if len(pairs) != len(movements) {
		return nil, &InvalidInputError{
			Field:  "movements",
			Reason: fmt.Sprintf("%d movements for %d pairs", len(movements), len(pairs)),
		}
	}
	for i, m := range movements {
		if err := m.validate(i, cfg.NumLanes); err != nil {
			return nil, err
		}
	}

	// the pool average is fixed for the whole round
	all := make([]Rating, 0, len(pairs)*2)
	for _, p := range pairs {
		all = append(all, p[0], p[1])
	}
	poolAverage := mean(all...)

	deltas := make([]Pair, len(pairs))
	for i, pair := range pairs {
		deltas[i] = ladderPairDelta(pair, movements[i], poolAverage, cfg)
	}
	return deltas, nil
}

// UpdateLadderRound returns the ratings of every pair after the round.
func UpdateLadderRound(pairs []Pair, movements []LaneMovement, cfg Config) ([]Pair, error) {
	deltas, err := LadderDeltas(pairs, movements, cfg)
	if err != nil {
		return nil, err
	}
	updated := make([]Pair, len(pairs))
	for i, p := range pairs {
		updated[i] = p.Add(deltas[i])
	}
	return updated, nil
}

func ladderPairDelta(pair Pair, m LaneMovement, poolAverage float64, cfg Config) Pair {
	outcome := LaneOutcome(m, cfg.NumLanes)
	factor := laneFactor(m, cfg.LaneMultiplierPct)
	edge := edgeCompensation(m, cfg)

	var d Pair
	for i := range pair {
		weighted := weightedRating(pair, i, cfg.FactorAvg)
		p := expectedScore(weighted, poolAverage, cfg.Ratio)
		raw := roundDelta(factor*cfg.Base + cfg.K*(outcome-p))
		d[i] = raw + roundDelta(edge+finalLaneAdjustment(m.End, weighted-poolAverage, cfg))
	}
	return d
}

// LaneOutcome maps a lane movement onto a pseudo-probability: 0.5 when the pair
// stays put, above it when the pair climbed.
func LaneOutcome(m LaneMovement, numLanes int) float64 {
	return (float64(m.Gained())/float64(numLanes))/2 + 0.5
}

// laneFactor scales the base term for jumps of more than one lane and carries
// the direction of the move.
func laneFactor(m LaneMovement, multiplierPct float64) float64 {
	gained := m.Gained()
	extra := math.Max(0, math.Abs(float64(gained))-1)
	factor := 1 + extra*(multiplierPct/100)
	if gained < 0 {
		factor = -factor
	}
	return factor
}

// edgeCompensation offsets the ceiling at lane 1 and the floor at the last lane,
// where a pair has no room left to move.
func edgeCompensation(m LaneMovement, cfg Config) float64 {
	switch {
	case m.Start <= cfg.EdgeReach && m.End == 1:
		return cfg.EdgeCompensation
	case m.Start > cfg.NumLanes-cfg.EdgeReach && m.End == cfg.NumLanes:
		return -cfg.EdgeCompensation
	}
	return 0
}

// finalLaneAdjustment penalises finishing at the bottom of the ladder and
// rewards finishing at the top. diff is the player's weighted rating minus the
// pool average; strong players at the bottom and weak ones at the top get a
// scaled amount. On short ladders where the lanes overlap, lane 1 comes first,
// then the bottom lane, then lane 2, so the top lane is never penalised.
func finalLaneAdjustment(end int, diff float64, cfg Config) float64 {
	scale := func(apply bool) float64 {
		if !apply {
			return 1
		}
		return 1 + math.Floor(math.Abs(diff)/cfg.FinalLaneStep)/10
	}

	switch end {
	case 1:
		if cfg.FinalLaneBonus == 0 {
			return 0
		}
		return cfg.FinalLaneBonus * scale(diff < 0)
	case cfg.NumLanes:
		if cfg.FinalLanePenalty == 0 {
			return 0
		}
		return -cfg.FinalLanePenalty * scale(diff > 0)
	case 2:
		return cfg.FinalLaneBonus * 0.5
	case cfg.NumLanes - 1:
		return -cfg.FinalLanePenalty * 0.5
	}
	return 0
}
