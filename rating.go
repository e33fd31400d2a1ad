package padelelo

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Rating is an integer skill score with no fixed range.
type Rating int

// Pair holds the ratings of two teammates. The order only matters for indexing.
type Pair [2]Rating

// NewPair builds a Pair, rejecting anything that is not exactly two ratings.
func NewPair(ratings ...Rating) (Pair, error) {
	if len(ratings) != 2 {
		return Pair{}, &InvalidInputError{
			Field:  "pair",
			Reason: fmt.Sprintf("expected 2 ratings, got %d", len(ratings)),
		}
	}
	return Pair{ratings[0], ratings[1]}, nil
}

// Average is the unweighted mean of both ratings.
func (p Pair) Average() float64 {
	return mean(p[0], p[1])
}

// Add returns a new pair with delta applied element-wise.
func (p Pair) Add(delta Pair) Pair {
	return Pair{p[0] + delta[0], p[1] + delta[1]}
}

// MatchScore holds the games won by side A and side B.
type MatchScore struct {
	A int `yaml:"a" json:"a"`
	B int `yaml:"b" json:"b"`
}

func (s MatchScore) validate() error {
	if s.A < 0 || s.B < 0 {
		return &InvalidInputError{Field: "score", Reason: fmt.Sprintf("negative score %d-%d", s.A, s.B)}
	}
	if s.A+s.B == 0 {
		return &InvalidInputError{Field: "score", Reason: "no games played"}
	}
	if s.A == s.B {
		return &InvalidOutcomeError{Score: s}
	}
	return nil
}

// LaneMovement is a pair's ladder lane before and after a round.
type LaneMovement struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

// Gained is positive when the pair moved towards lane 1.
func (m LaneMovement) Gained() int {
	return m.Start - m.End
}

func (m LaneMovement) validate(index, numLanes int) error {
	for _, lane := range []int{m.Start, m.End} {
		if lane < 1 || lane > numLanes {
			return &InvalidInputError{
				Field:  fmt.Sprintf("movements[%d]", index),
				Reason: fmt.Sprintf("lane %d outside [1, %d]", lane, numLanes),
			}
		}
	}
	return nil
}

func mean(ratings ...Rating) float64 {
	data := make(stats.Float64Data, 0, len(ratings))
	for _, r := range ratings {
		data = append(data, float64(r))
	}
	// callers never pass an empty set
	avg, _ := stats.Mean(data)
	return avg
}

// roundDelta rounds to the nearest integer, ties to even.
func roundDelta(x float64) Rating {
	return Rating(math.RoundToEven(x))
}
