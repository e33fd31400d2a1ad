package iface

// Player is a league member whose rating is owned by the caller.
type Player interface {

	// ID is a stable player identifier
	ID() string

	// Rating is the current rating
	Rating() int

	// SetRating stores a settled rating
	SetRating(rating int)
}
