package example

import (
	"sync"

	"github.com/hedon954/padel-elo/iface"
)

type Player struct {
	sync.RWMutex

	id     string
	name   string
	rating int
}

func NewPlayer(id, name string, rating int) *Player {
	return &Player{
		RWMutex: sync.RWMutex{},
		id:      id,
		name:    name,
		rating:  rating,
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Rating() int {
	p.RLock()
	defer p.RUnlock()
	return p.rating
}

func (p *Player) SetRating(rating int) {
	p.Lock()
	defer p.Unlock()
	p.rating = rating
}

var _ iface.Player = (*Player)(nil)
