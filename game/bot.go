package game

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/ragdoll-volley/constant"
	"github.com/lixenwraith/ragdoll-volley/physics"
)

// Bot drives the right-hand ragdoll with a fixed-interval heuristic
//
// Decisions run on simulated time, every BotInterval. A hit raises that arm
// and arms its pose timer; a later hit overwrites the timer instead of racing it.
type Bot struct {
	doll   *physics.Ragdoll
	rng    Rand
	params *Params

	untilDecision time.Duration
	pose          [2]time.Duration
	decisions     uint64
}

// NewBot binds the heuristic to the bot ragdoll
func NewBot(doll *physics.Ragdoll, rng Rand, params *Params) *Bot {
	return &Bot{
		doll:          doll,
		rng:           rng,
		params:        params,
		untilDecision: params.BotInterval,
	}
}

// Advance moves the bot's clocks by dt and runs every decision that falls due
// Returns the number of hit impulses applied to the ball
func (b *Bot) Advance(dt time.Duration, w *physics.World) int {
	b.tickPoses(dt)

	hits := 0
	b.untilDecision -= dt
	for b.untilDecision <= 0 {
		hits += b.Decide(w)
		b.untilDecision += b.params.BotInterval
	}
	return hits
}

// Decide runs one round of the heuristic: chase, jump, hit
func (b *Bot) Decide(w *physics.World) int {
	b.decisions++
	p := b.params
	ball := w.Ball.Position()
	torso := b.doll.Torso().Position()

	// Chase only on our half, unless the wander roll fires
	if w.OnBotHalf(ball.X) || b.rng.Float64() < p.BotWanderChance {
		dir := -1.0
		if ball.X > torso.X {
			dir = 1.0
		}
		b.doll.PushTorso(cp.Vector{X: p.BotMoveForce * dir})
	}

	if math.Abs(ball.X-torso.X) < p.BotJumpReachX &&
		ball.Y < torso.Y-p.BotJumpClearanceY &&
		b.doll.FootNearGround(p.BotGroundThreshold) {
		b.doll.PushTorso(cp.Vector{Y: -p.BotJumpForce})
	}

	hits := 0
	j := p.BotHitImpulse
	for side, near := range b.doll.HandsNear(ball, p.HitRadius) {
		if !near {
			continue
		}
		b.doll.SetArmPose(physics.ArmSide(side), p.raisedAngle(side))
		b.pose[side] = p.BotPoseHold
		w.Ball.Impulse(cp.Vector{X: -j, Y: -j})
		hits++
	}
	return hits
}

func (b *Bot) tickPoses(dt time.Duration) {
	for side := range b.pose {
		if b.pose[side] <= 0 {
			continue
		}
		b.pose[side] -= dt
		if b.pose[side] <= 0 {
			b.pose[side] = 0
			b.doll.SetArmPose(physics.ArmSide(side), constant.ArmRestAngle)
		}
	}
}

// PoseRemaining returns how long the arm on side stays raised
func (b *Bot) PoseRemaining(side physics.ArmSide) time.Duration {
	return b.pose[side]
}

// Decisions returns how many heuristic rounds have run
func (b *Bot) Decisions() uint64 {
	return b.decisions
}

// Reset clears pose timers and restarts the decision interval
func (b *Bot) Reset() {
	b.pose = [2]time.Duration{}
	b.untilDecision = b.params.BotInterval
}
