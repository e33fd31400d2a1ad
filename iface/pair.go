package iface

// Pair is two players sharing a side of the court.
// Settlement rejects pairs that do not hold exactly two players.
type Pair interface {
	ID() string

	Players() []Player
}
