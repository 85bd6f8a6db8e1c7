package game

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/ragdoll-volley/input"
	"github.com/lixenwraith/ragdoll-volley/status"
)

const testStep = time.Second / 120

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// fixedRand returns the same roll forever and counts how often it was asked
type fixedRand struct {
	roll  float64
	calls int
}

func (r *fixedRand) Float64() float64 {
	r.calls++
	return r.roll
}

func newTestGame(t *testing.T, roll float64) (*Game, *fixedRand, *status.Registry) {
	t.Helper()
	rng := &fixedRand{roll: roll}
	reg := status.NewRegistry()
	g := New(DefaultParams(), input.NewState(time.Second), rng, reg)
	return g, rng, reg
}

// placeBody moves a body and stops it
func placeBody(b *cp.Body, p cp.Vector) {
	b.SetPosition(p)
	b.SetVelocity(0, 0)
}
