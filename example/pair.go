package example

import (
	"github.com/hedon954/padel-elo/iface"
)

type Pair struct {
	id      string
	players []iface.Player
}

func NewPair(id string, players ...iface.Player) *Pair {
	return &Pair{
		id:      id,
		players: players,
	}
}

func (p *Pair) ID() string {
	return p.id
}

func (p *Pair) Players() []iface.Player {
	return p.players
}

// Ratings lists the current rating of each player.
func (p *Pair) Ratings() []int {
	res := make([]int, 0, len(p.players))
	for _, pl := range p.players {
		res = append(res, pl.Rating())
	}
	return res
}

// Pairs converts concrete pairs for settlement calls.
func Pairs(ps ...*Pair) []iface.Pair {
	res := make([]iface.Pair, 0, len(ps))
	for _, p := range ps {
		res = append(res, p)
	}
	return res
}
