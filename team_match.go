package padelelo

import "math"

// TeamMatchDeltas computes the rating change of every player of a fixed-team
// match. Team A's games are score.A, team B's are score.B.
func TeamMatchDeltas(teamA, teamB Pair, score MatchScore, cfg Config) (Pair, Pair, error) {
	if err := cfg.ValidateMatch(); err != nil {
		return Pair{}, Pair{}, err
	}
	if err := score.validate(); err != nil {
		return Pair{}, Pair{}, err
	}

	avgA, avgB := teamA.Average(), teamB.Average()

	total := float64(score.A + score.B)
	resultA := compressOutcome(float64(score.A)/total, cfg.OutcomeCompression)
	resultB := compressOutcome(float64(score.B)/total, cfg.OutcomeCompression)

	factorA, factorB := 1.0, -1.0
	if score.B > score.A {
		factorA, factorB = -1, 1
	}

	base := cfg.adjustedBase(math.Abs(avgA - avgB))

	deltas := func(team Pair, opponentAvg, outcome, factor float64) Pair {
		var d Pair
		for i := range team {
			p := expectedScore(weightedRating(team, i, cfg.FactorAvg), opponentAvg, cfg.Ratio)
			d[i] = roundDelta(factor*base + cfg.K*(outcome-p))
		}
		return d
	}

	return deltas(teamA, avgB, resultA, factorA), deltas(teamB, avgA, resultB, factorB), nil
}

// compressOutcome keeps a game share away from 0 and 1 so that a shutout is
// never scored as a certain win. resultA + resultB is always 1.
func compressOutcome(share, compression float64) float64 {
	return share*compression + (1-compression)/2
}

// UpdateTeamMatch returns the ratings of both teams after the match.
func UpdateTeamMatch(teamA, teamB Pair, score MatchScore, cfg Config) (Pair, Pair, error) {
	da, db, err := TeamMatchDeltas(teamA, teamB, score, cfg)
	if err != nil {
		return Pair{}, Pair{}, err
	}
	return teamA.Add(da), teamB.Add(db), nil
}
