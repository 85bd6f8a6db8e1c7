package game

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/ragdoll-volley/constant"
	"github.com/lixenwraith/ragdoll-volley/physics"
)

func TestBotIdlesWhenBallOnPlayerSideAndWanderFails(t *testing.T) {
	g, rng, _ := newTestGame(t, 0.9)
	placeBody(g.World.Ball.Body, cp.Vector{X: 200, Y: 100})

	g.bot.Decide(g.World)

	if got := g.World.Bot.Torso().Force(); got != (cp.Vector{}) {
		t.Errorf("bot force = %v, want none", got)
	}
	if rng.calls != 1 {
		t.Errorf("wander rolls = %d, want 1", rng.calls)
	}
}

func TestBotWandersWhenRollSucceeds(t *testing.T) {
	g, _, _ := newTestGame(t, 0.1)
	placeBody(g.World.Ball.Body, cp.Vector{X: 200, Y: 100})

	g.bot.Decide(g.World)

	if got, want := g.World.Bot.Torso().Force(), (cp.Vector{X: -constant.BotMoveForce}); got != want {
		t.Errorf("bot force = %v, want %v", got, want)
	}
}

func TestBotChasesOnItsHalfWithoutRolling(t *testing.T) {
	tests := []struct {
		name  string
		ballX float64
		wantX float64
	}{
		{"ball left of bot", 600, -constant.BotMoveForce},
		{"ball right of bot", 850, constant.BotMoveForce},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rng, _ := newTestGame(t, 0.9)
			placeBody(g.World.Ball.Body, cp.Vector{X: tt.ballX, Y: 100})

			g.bot.Decide(g.World)

			if got := g.World.Bot.Torso().Force(); got != (cp.Vector{X: tt.wantX}) {
				t.Errorf("bot force = %v, want x=%f", got, tt.wantX)
			}
			if rng.calls != 0 {
				t.Errorf("wander rolled %d times with ball on bot half", rng.calls)
			}
		})
	}
}

func TestBotJumpsOnlyWhenGroundedUnderBall(t *testing.T) {
	g, _, _ := newTestGame(t, 0.9)
	doll := g.World.Bot
	torso := doll.Torso().Position()
	placeBody(g.World.Ball.Body, cp.Vector{X: torso.X + 10, Y: torso.Y - 100})

	// Spawn feet hang above the bot's ground line
	g.bot.Decide(g.World)
	if got := doll.Torso().Force(); got.Y != 0 {
		t.Fatalf("jumped while airborne: %v", got)
	}
	g.World.Step(testStep.Seconds())

	placeBody(doll.Body(physics.FootR), cp.Vector{X: torso.X + 10, Y: constant.BotGroundThreshold + 2})
	placeBody(doll.Torso(), torso)
	g.bot.Decide(g.World)
	if got := doll.Torso().Force(); got.Y != -constant.BotJumpForce {
		t.Errorf("jump force = %v, want y=%f", got, -constant.BotJumpForce)
	}
}

func TestBotHitRaisesArmAndOverwritesPoseTimer(t *testing.T) {
	g, _, _ := newTestGame(t, 0.9)
	doll := g.World.Bot
	ball := g.World.Ball
	nearLeftHand := func() {
		placeBody(ball.Body, doll.Hand(physics.Left).Position().Add(cp.Vector{X: 10}))
	}

	nearLeftHand()
	if hits := g.bot.Decide(g.World); hits != 1 {
		t.Fatalf("hits = %d, want 1", hits)
	}
	if v := ball.Body.Velocity(); v.X >= 0 || v.Y >= 0 {
		t.Errorf("ball velocity = %v, want up and toward the player", v)
	}
	if doll.ArmAngle(physics.Left) != constant.ArmRaiseAngle {
		t.Errorf("left arm = %f, want raised", doll.ArmAngle(physics.Left))
	}
	if g.bot.PoseRemaining(physics.Left) != constant.BotPoseHoldDuration {
		t.Errorf("pose timer = %v, want %v", g.bot.PoseRemaining(physics.Left), constant.BotPoseHoldDuration)
	}
	if g.bot.PoseRemaining(physics.Right) != 0 {
		t.Error("right arm timer armed without a right-hand hit")
	}

	g.bot.tickPoses(150 * time.Millisecond)
	nearLeftHand()
	g.bot.Decide(g.World)

	// A one-shot reset from the first hit would fire here
	g.bot.tickPoses(150 * time.Millisecond)
	if doll.ArmAngle(physics.Left) != constant.ArmRaiseAngle {
		t.Fatal("arm lowered by the superseded timer")
	}

	g.bot.tickPoses(60 * time.Millisecond)
	if doll.ArmAngle(physics.Left) != 0 {
		t.Errorf("arm = %f after hold elapsed, want 0", doll.ArmAngle(physics.Left))
	}
	if g.bot.PoseRemaining(physics.Left) != 0 {
		t.Errorf("pose timer = %v, want 0", g.bot.PoseRemaining(physics.Left))
	}
}

func TestBotAdvanceRunsOnInterval(t *testing.T) {
	g, _, _ := newTestGame(t, 0.9)
	placeBody(g.World.Ball.Body, cp.Vector{X: 200, Y: 100})

	g.bot.Advance(100*time.Millisecond, g.World)
	if g.bot.Decisions() != 0 {
		t.Fatalf("decisions after 100ms = %d, want 0", g.bot.Decisions())
	}
	g.bot.Advance(100*time.Millisecond, g.World)
	if g.bot.Decisions() != 1 {
		t.Fatalf("decisions after 200ms = %d, want 1", g.bot.Decisions())
	}
	g.bot.Advance(360*time.Millisecond, g.World)
	if g.bot.Decisions() != 3 {
		t.Errorf("decisions after 560ms = %d, want 3", g.bot.Decisions())
	}

	g.bot.Reset()
	g.bot.Advance(170*time.Millisecond, g.World)
	if g.bot.Decisions() != 3 {
		t.Errorf("Reset should restart the interval, decisions = %d", g.bot.Decisions())
	}
}
