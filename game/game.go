// Package game owns the match: score, input, bot and the per-step update
// that orders them around the physics step.
package game

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ragdoll-volley/constant"
	"github.com/lixenwraith/ragdoll-volley/input"
	"github.com/lixenwraith/ragdoll-volley/physics"
	"github.com/lixenwraith/ragdoll-volley/status"
)

// Game is the single owner of all match state
// Not safe for concurrent use; the driver loop calls it from one goroutine
type Game struct {
	World *physics.World
	Input *input.State
	Score Score

	params  Params
	player  *InputController
	bot     *Bot
	tracker *ScoreTracker

	tick   uint64
	events []Event

	statTicks       *atomic.Int64
	statHitsPlayer  *atomic.Int64
	statHitsBot     *atomic.Int64
	statScorePlayer *atomic.Int64
	statScoreBot    *atomic.Int64
	statDecisions   *atomic.Int64
	statBallSpeed   *status.Gauge
}

// New builds a fresh court and match
func New(params Params, in *input.State, rng Rand, reg *status.Registry) *Game {
	if reg == nil {
		reg = status.NewRegistry()
	}

	g := &Game{
		World:   physics.NewWorld(),
		Input:   in,
		params:  params,
		tracker: NewScoreTracker(params.ScoreThreshold, constant.CourtMidX),

		statTicks:       reg.Counter("game.ticks"),
		statHitsPlayer:  reg.Counter("hits.player"),
		statHitsBot:     reg.Counter("hits.bot"),
		statScorePlayer: reg.Counter("score.player"),
		statScoreBot:    reg.Counter("score.bot"),
		statDecisions:   reg.Counter("bot.decisions"),
		statBallSpeed:   reg.Gauge("ball.speed"),
	}
	g.player = NewInputController(g.World.Player, &g.params)
	g.bot = NewBot(g.World.Bot, rng, &g.params)
	return g
}

// Update runs one fixed step of length dt:
// input edges, held forces, bot clocks, physics, then the landing check
func (g *Game) Update(dt time.Duration) {
	g.tick++
	w := g.World

	for _, e := range g.Input.Edges() {
		if n := g.player.HandleEdge(e, w.Ball); n > 0 {
			g.hit(SidePlayer, n)
		}
	}
	g.player.Apply(g.Input)

	if n := g.bot.Advance(dt, w); n > 0 {
		g.hit(SideBot, n)
	}

	w.Step(dt.Seconds())
	g.checkScore()

	g.statTicks.Store(int64(g.tick))
	g.statDecisions.Store(int64(g.bot.Decisions()))
	g.statBallSpeed.Store(w.Ball.Body.Velocity().Length())
}

func (g *Game) hit(side Side, impulses int) {
	if side == SidePlayer {
		g.statHitsPlayer.Add(int64(impulses))
	} else {
		g.statHitsBot.Add(int64(impulses))
	}
	g.emit(EventHit, side)
}

func (g *Game) checkScore() {
	side, scored := g.tracker.Observe(g.World.Ball)
	if !scored {
		return
	}

	g.Score.Award(side)
	g.statScorePlayer.Store(int64(g.Score.Player))
	g.statScoreBot.Store(int64(g.Score.Bot))

	// The side that conceded receives the next serve
	g.World.ResetRally(side == SidePlayer)
	g.bot.Reset()
	g.emit(EventPoint, side)
}

func (g *Game) emit(kind EventKind, side Side) {
	g.events = append(g.events, Event{Kind: kind, Side: side, Tick: g.tick})
}

// Restart zeroes the score and starts a fresh rally
func (g *Game) Restart() {
	g.Score = Score{}
	g.statScorePlayer.Store(0)
	g.statScoreBot.Store(0)

	g.World.ResetRally(false)
	g.bot.Reset()
	g.tracker.Rearm()
	g.Input.Clear()
	g.emit(EventRestart, SidePlayer)
}

// Events returns events since the last call and clears them
func (g *Game) Events() []Event {
	out := g.events
	g.events = nil
	return out
}

// Tick returns the number of steps run
func (g *Game) Tick() uint64 {
	return g.tick
}

// Bot exposes the bot controller
func (g *Game) Bot() *Bot {
	return g.bot
}
