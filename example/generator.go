package example

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	padelelo "github.com/hedon954/padel-elo"
)

const (
	MinRating = 1000
	MaxRating = 2200
)

// Generator produces random league data for simulations and tests.
type Generator struct {
	faker *gofakeit.Faker
	seed  uint64
}

// NewGenerator creates a generator with an optional seed.
func NewGenerator(seed ...uint64) *Generator {
	var s uint64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = uint64(time.Now().UnixNano())
	}
	return &Generator{
		faker: gofakeit.New(s),
		seed:  s,
	}
}

func (g *Generator) Seed() uint64 {
	return g.seed
}

func (g *Generator) Rating() int {
	return g.faker.IntRange(MinRating, MaxRating)
}

func (g *Generator) Player() *Player {
	return NewPlayer(g.faker.UUID(), g.faker.Name(), g.Rating())
}

func (g *Generator) Pair(id string) *Pair {
	return NewPair(id, g.Player(), g.Player())
}

func (g *Generator) Pairs(n int) []*Pair {
	res := make([]*Pair, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, g.Pair(fmt.Sprintf("pair-%d", i+1)))
	}
	return res
}

// MatchScore returns a decided score: the winner takes 6 or 7 games.
func (g *Generator) MatchScore() padelelo.MatchScore {
	won := g.faker.IntRange(6, 7)
	lost := g.faker.IntRange(0, won-1)
	if g.faker.Bool() {
		return padelelo.MatchScore{A: won, B: lost}
	}
	return padelelo.MatchScore{A: lost, B: won}
}

// Movements spreads n pairs over the lanes and moves each by at most two lanes.
func (g *Generator) Movements(n, numLanes int) []padelelo.LaneMovement {
	res := make([]padelelo.LaneMovement, 0, n)
	for i := 0; i < n; i++ {
		start := i%numLanes + 1
		end := start + g.faker.IntRange(-2, 2)
		if end < 1 {
			end = 1
		}
		if end > numLanes {
			end = numLanes
		}
		res = append(res, padelelo.LaneMovement{Start: start, End: end})
	}
	return res
}
