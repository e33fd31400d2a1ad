package padelelo

import (
	"fmt"
	"log/slog"

	"github.com/hedon954/padel-elo/iface"
)

// EventKind tells match settlements from ladder settlements.
type EventKind string

const (
	KindMatch  EventKind = "match"
	KindLadder EventKind = "ladder"
)

// Change is the rating movement of one player in one settlement.
type Change struct {
	PairID   string
	PlayerID string
	Before   Rating
	Delta    Rating
	After    Rating
}

// Settlement is the applied result of one event.
type Settlement struct {
	EventID string
	Kind    EventKind
	Changes []Change
}

// Settler applies engine results to collaborator-owned players. It keeps no
// state between calls besides its configuration.
type Settler struct {
	match   Config
	ladder  Config
	logger  *slog.Logger
	metrics *Metrics
}

// SettlerOption customises a Settler.
type SettlerOption func(*Settler)

// WithLogger sets the logger used for settlement records.
func WithLogger(logger *slog.Logger) SettlerOption {
	return func(s *Settler) {
		s.logger = logger
	}
}

// WithMetrics records every settlement on m.
func WithMetrics(m *Metrics) SettlerOption {
	return func(s *Settler) {
		s.metrics = m
	}
}

// NewSettler validates both configurations once so that settlement only fails
// on bad event input.
func NewSettler(match, ladder Config, opts ...SettlerOption) (*Settler, error) {
	if err := match.ValidateMatch(); err != nil {
		return nil, err
	}
	if err := ladder.ValidateLadder(); err != nil {
		return nil, err
	}
	s := &Settler{
		match:  match,
		ladder: ladder,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// LadderConfig returns the configuration used for ladder rounds.
func (s *Settler) LadderConfig() Config { return s.ladder }

// SettleMatch updates the four players of a match. Nothing is written when the
// event is invalid.
func (s *Settler) SettleMatch(eventID string, a, b iface.Pair, score MatchScore) (*Settlement, error) {
	ratings, players, err := collectPairs(a, b)
	if err != nil {
		return nil, s.fail(eventID, KindMatch, err)
	}

	da, db, err := TeamMatchDeltas(ratings[0], ratings[1], score, s.match)
	if err != nil {
		return nil, s.fail(eventID, KindMatch, err)
	}

	st := s.apply(eventID, KindMatch, []iface.Pair{a, b}, players, ratings, []Pair{da, db})
	s.logger.Info("match settled",
		slog.String("event_id", eventID),
		slog.String("team_a", a.ID()),
		slog.String("team_b", b.ID()),
		slog.Int("score_a", score.A),
		slog.Int("score_b", score.B),
	)
	return st, nil
}

// SettleLadder updates every player of an americana round. movements[i]
// belongs to pairs[i].
func (s *Settler) SettleLadder(eventID string, pairs []iface.Pair, movements []LaneMovement) (*Settlement, error) {
	ratings, players, err := collectPairs(pairs...)
	if err != nil {
		return nil, s.fail(eventID, KindLadder, err)
	}

	deltas, err := LadderDeltas(ratings, movements, s.ladder)
	if err != nil {
		return nil, s.fail(eventID, KindLadder, err)
	}

	st := s.apply(eventID, KindLadder, pairs, players, ratings, deltas)
	s.logger.Info("ladder round settled",
		slog.String("event_id", eventID),
		slog.Int("pairs", len(pairs)),
	)
	return st, nil
}

func (s *Settler) apply(
	eventID string, kind EventKind, pairs []iface.Pair, players [][2]iface.Player, before, deltas []Pair,
) *Settlement {
	st := &Settlement{
		EventID: eventID,
		Kind:    kind,
		Changes: make([]Change, 0, len(pairs)*2),
	}
	for i, pair := range pairs {
		after := before[i].Add(deltas[i])
		for j, p := range players[i] {
			p.SetRating(int(after[j]))
			c := Change{
				PairID:   pair.ID(),
				PlayerID: p.ID(),
				Before:   before[i][j],
				Delta:    deltas[i][j],
				After:    after[j],
			}
			st.Changes = append(st.Changes, c)
			s.logger.Debug("rating updated",
				slog.String("event_id", eventID),
				slog.String("player_id", c.PlayerID),
				slog.Int("before", int(c.Before)),
				slog.Int("delta", int(c.Delta)),
				slog.Int("after", int(c.After)),
			)
		}
	}
	s.metrics.observe(st)
	return st
}

func (s *Settler) fail(eventID string, kind EventKind, err error) error {
	s.logger.Error("settlement rejected",
		slog.String("event_id", eventID),
		slog.String("kind", string(kind)),
		slog.Any("error", err),
	)
	s.metrics.rejected(kind)
	return err
}

// collectPairs snapshots the ratings of every pair before anything is written.
func collectPairs(pairs ...iface.Pair) ([]Pair, [][2]iface.Player, error) {
	ratings := make([]Pair, len(pairs))
	players := make([][2]iface.Player, len(pairs))
	seen := make(map[string]struct{}, len(pairs)*2)

	for i, pair := range pairs {
		if pair == nil {
			return nil, nil, &InvalidInputError{Field: fmt.Sprintf("pairs[%d]", i), Reason: "missing pair"}
		}
		ps := pair.Players()
		rs := make([]Rating, 0, len(ps))
		for j, p := range ps {
			if p == nil {
				return nil, nil, &InvalidInputError{
					Field:  fmt.Sprintf("pairs[%d].players[%d]", i, j),
					Reason: "missing player",
				}
			}
			if _, ok := seen[p.ID()]; ok {
				return nil, nil, &InvalidInputError{
					Field:  fmt.Sprintf("pairs[%d]", i),
					Reason: fmt.Sprintf("player %s appears more than once", p.ID()),
				}
			}
			seen[p.ID()] = struct{}{}
			rs = append(rs, Rating(p.Rating()))
		}
		r, err := NewPair(rs...)
		if err != nil {
			return nil, nil, &InvalidInputError{
				Field:  fmt.Sprintf("pairs[%d]", i),
				Reason: fmt.Sprintf("pair %s has %d players", pair.ID(), len(ps)),
			}
		}
		ratings[i] = r
		players[i] = [2]iface.Player{ps[0], ps[1]}
	}
	return ratings, players, nil
}
