package game

import (
	"math/rand/v2"
)

// Side identifies a team
type Side uint8

const (
	SidePlayer Side = iota
	SideBot
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "bot"
}

// Score holds both point counters; counters only ever go up
type Score struct {
	Player int
	Bot    int
}

// Award adds one point to side
func (s *Score) Award(side Side) {
	if side == SidePlayer {
		s.Player++
		return
	}
	s.Bot++
}

// Rand is the random source of the bot's wander roll
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
