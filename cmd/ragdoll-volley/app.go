package main

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ragdoll-volley/audio"
	"github.com/lixenwraith/ragdoll-volley/config"
	"github.com/lixenwraith/ragdoll-volley/core"
	"github.com/lixenwraith/ragdoll-volley/engine"
	"github.com/lixenwraith/ragdoll-volley/game"
	"github.com/lixenwraith/ragdoll-volley/input"
	"github.com/lixenwraith/ragdoll-volley/physics"
	"github.com/lixenwraith/ragdoll-volley/render"
	"github.com/lixenwraith/ragdoll-volley/status"
)

// app is the driver loop: it owns the screen, the clock and the game
type app struct {
	screen   tcell.Screen
	keys     *input.KeyTable
	input    *input.State
	game     *game.Game
	clock    *engine.PausableClock
	stepper  *engine.Stepper
	sounds   *audio.SoundManager
	renderer *render.Renderer
	registry *status.Registry

	seed    uint64
	overlay bool

	statFrames  *atomic.Int64
	statDropped *status.Gauge
}

func newApp(cfg *config.Config, screen tcell.Screen, keys *input.KeyTable, source engine.TimeProvider, sounds *audio.SoundManager) *app {
	reg := status.NewRegistry()
	in := input.NewState(cfg.HoldWindow.Duration)

	params := game.DefaultParams()
	params.BotInterval = cfg.BotInterval.Duration
	params.BotWanderChance = cfg.Bot.WanderChance

	clock := engine.NewPausableClock(source)
	stepper := engine.NewStepper(cfg.TickDuration(), cfg.MaxStepsPerFrame)
	stepper.Reset(clock.Now())

	return &app{
		screen:      screen,
		keys:        keys,
		input:       in,
		game:        game.New(params, in, game.NewRand(cfg.Seed), reg),
		clock:       clock,
		stepper:     stepper,
		sounds:      sounds,
		renderer:    render.NewRenderer(screen, cfg.Color),
		registry:    reg,
		seed:        cfg.Seed,
		statFrames:  reg.Counter("frames"),
		statDropped: reg.Gauge("steps.dropped"),
	}
}

// run polls terminal events and draws frames until quit
func (a *app) run(frame time.Duration) {
	events := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

// handleEvent applies one terminal event; false means quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleAction(a.keys.Lookup(ev))
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) handleAction(action input.Action) bool {
	switch action {
	case input.ActionNone:
	case input.ActionQuit:
		log.Printf("quit at tick %d, score %d-%d", a.game.Tick(), a.game.Score.Player, a.game.Score.Bot)
		return false
	case input.ActionPause:
		paused := a.clock.Toggle()
		// Up edges lower raised arms on the first step after resume
		a.input.ReleaseAll()
		log.Printf("paused=%v at tick %d", paused, a.game.Tick())
	case input.ActionRestart:
		a.game.Restart()
	case input.ActionOverlay:
		a.overlay = !a.overlay
	case input.ActionMute:
		log.Printf("muted=%v", a.sounds.ToggleMute())
	default:
		if !a.clock.IsPaused() {
			a.input.Press(action, a.clock.Now())
		}
	}
	return true
}

// frame runs every physics step that is due, reacts to game events and draws
func (a *app) frame() {
	now := a.clock.Now()
	a.input.Expire(now)

	steps := a.stepper.Advance(now)
	for i := 0; i < steps; i++ {
		a.game.Update(a.stepper.Step())
	}

	for _, e := range a.game.Events() {
		a.handleGameEvent(e)
	}

	a.statFrames.Add(1)
	a.statDropped.Store(float64(a.stepper.Dropped()))

	f := render.Frame{
		World:       a.game.World,
		PlayerScore: a.game.Score.Player,
		BotScore:    a.game.Score.Bot,
		Paused:      a.clock.IsPaused(),
		Muted:       a.sounds.Muted(),
	}
	if a.overlay {
		f.Overlay = a.overlayLines()
	}
	a.renderer.Draw(f)
}

func (a *app) handleGameEvent(e game.Event) {
	var cue audio.Cue
	switch e.Kind {
	case game.EventHit:
		cue = audio.CueHitPlayer
		if e.Side == game.SideBot {
			cue = audio.CueHitBot
		}
	case game.EventPoint:
		log.Printf("point %s at tick %d, score %d-%d", e.Side, e.Tick, a.game.Score.Player, a.game.Score.Bot)
		cue = audio.CuePointPlayer
		if e.Side == game.SideBot {
			cue = audio.CuePointBot
		}
	case game.EventRestart:
		log.Printf("match restarted at tick %d", e.Tick)
		return
	default:
		return
	}

	if err := a.sounds.Play(cue); err != nil {
		log.Printf("sound %s: %v", e.Kind, err)
	}
}

func (a *app) overlayLines() []string {
	w, bot := a.game.World, a.game.Bot()
	lines := []string{
		fmt.Sprintf("seed: %d", a.seed),
		fmt.Sprintf("paused total: %s", a.clock.TotalPaused().Round(time.Millisecond)),
		fmt.Sprintf("arms: %+.2f %+.2f", w.Player.ArmAngle(physics.Left), w.Player.ArmAngle(physics.Right)),
		fmt.Sprintf("bot pose: %s %s", bot.PoseRemaining(physics.Left), bot.PoseRemaining(physics.Right)),
	}
	return append(lines, a.registry.Lines()...)
}
