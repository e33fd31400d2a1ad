package padelelo

import (
	"fmt"
	"math"
)

// ExpectedScore is the logistic win probability of a player rated self against
// an opponent side averaging opponentAverage.
func ExpectedScore(self, opponentAverage, ratio float64) (float64, error) {
	if !validRatio(ratio) {
		return 0, &ConfigurationError{Field: "ratio", Value: ratio, Reason: "must be > 0"}
	}
	return expectedScore(self, opponentAverage, ratio), nil
}

// validRatio reports whether ratio is a finite positive number.
func validRatio(ratio float64) bool {
	return ratio > 0 && !math.IsInf(ratio, 0)
}

func expectedScore(self, opponentAverage, ratio float64) float64 {
	return 1 / (1 + math.Pow(10, (opponentAverage-self)/ratio))
}

// WeightedRating blends the rating of the player at index with the partner's:
// factorAvg of their own rating and the remainder of the partner's.
func WeightedRating(pair Pair, index int, factorAvg float64) (float64, error) {
	if index != 0 && index != 1 {
		return 0, &InvalidInputError{Field: "index", Reason: fmt.Sprintf("%d is not a pair position", index)}
	}
	if !(factorAvg >= 0 && factorAvg <= 1) {
		return 0, &ConfigurationError{Field: "factor_avg", Value: factorAvg, Reason: "must be within [0, 1]"}
	}
	return weightedRating(pair, index, factorAvg), nil
}

func weightedRating(pair Pair, index int, factorAvg float64) float64 {
	return float64(pair[index])*factorAvg + float64(pair[1-index])*(1-factorAvg)
}
