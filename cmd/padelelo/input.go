package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	padelelo "github.com/hedon954/padel-elo"
	"github.com/hedon954/padel-elo/example"
	"github.com/hedon954/padel-elo/iface"
)

// RoundFile is the YAML layout of a ladder round.
type RoundFile struct {
	Pairs []RoundPair `yaml:"pairs"`
}

type RoundPair struct {
	ID      string        `yaml:"id"`
	Players []RoundPlayer `yaml:"players"`
	Start   int           `yaml:"start"`
	End     int           `yaml:"end"`
}

type RoundPlayer struct {
	ID     string `yaml:"id"`
	Rating int    `yaml:"rating"`
}

func loadRound(path string) (*RoundFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read round %s", path)
	}
	var rf RoundFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal round %s", path)
	}
	return &rf, nil
}

// event turns the file into collaborator pairs and lane movements.
func (rf *RoundFile) event() ([]*example.Pair, []padelelo.LaneMovement) {
	pairs := make([]*example.Pair, 0, len(rf.Pairs))
	moves := make([]padelelo.LaneMovement, 0, len(rf.Pairs))
	for _, rp := range rf.Pairs {
		players := make([]*example.Player, 0, len(rp.Players))
		for _, p := range rp.Players {
			players = append(players, example.NewPlayer(p.ID, p.ID, p.Rating))
		}
		pairs = append(pairs, newPair(rp.ID, players...))
		moves = append(moves, padelelo.LaneMovement{Start: rp.Start, End: rp.End})
	}
	return pairs, moves
}

func newPair(id string, players ...*example.Player) *example.Pair {
	ps := make([]iface.Player, 0, len(players))
	for _, p := range players {
		ps = append(ps, p)
	}
	return example.NewPair(id, ps...)
}

// parseInts reads a comma separated list such as "1500,1600".
func parseInts(flag, s string) ([]int, error) {
	parts := strings.Split(s, ",")
	res := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "--%s", flag)
		}
		res = append(res, n)
	}
	return res, nil
}
