package padelelo

import (
	"github.com/google/uuid"

	"github.com/hedon954/padel-elo/iface"
)

// Event is a result waiting to be settled.
type Event interface {
	ID() string
	Kind() EventKind

	settle(s *Settler) (*Settlement, error)
}

// MatchEvent is a finished fixed-team match.
type MatchEvent struct {
	id    string
	TeamA iface.Pair
	TeamB iface.Pair
	Score MatchScore
}

// NewMatchEvent wraps a match result with a fresh event ID.
func NewMatchEvent(teamA, teamB iface.Pair, score MatchScore) *MatchEvent {
	return &MatchEvent{
		id:    uuid.NewString(),
		TeamA: teamA,
		TeamB: teamB,
		Score: score,
	}
}

func (e *MatchEvent) ID() string { return e.id }
func (e *MatchEvent) Kind() EventKind { return KindMatch }

func (e *MatchEvent) settle(s *Settler) (*Settlement, error) {
	return s.SettleMatch(e.id, e.TeamA, e.TeamB, e.Score)
}

// LadderEvent is a finished americana round. Movements[i] belongs to Pairs[i].
type LadderEvent struct {
	id        string
	Pairs     []iface.Pair
	Movements []LaneMovement
}

// NewLadderEvent wraps a ladder round with a fresh event ID.
func NewLadderEvent(pairs []iface.Pair, movements []LaneMovement) *LadderEvent {
	return &LadderEvent{
		id:        uuid.NewString(),
		Pairs:     pairs,
		Movements: movements,
	}
}

func (e *LadderEvent) ID() string { return e.id }
func (e *LadderEvent) Kind() EventKind { return KindLadder }

func (e *LadderEvent) settle(s *Settler) (*Settlement, error) {
	return s.SettleLadder(e.id, e.Pairs, e.Movements)
}

// Result is the outcome of settling one event.
type Result struct {
	Event      Event
	Settlement *Settlement
	Err        error
}
