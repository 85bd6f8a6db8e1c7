package constant

import (
	"math"
	"time"
)

// Player control forces
const (
	// PlayerMoveForce is applied to the torso each step a move key is held
	PlayerMoveForce = 7000.0

	// PlayerJumpForce is applied upward each step jump is held with a foot grounded
	PlayerJumpForce = 110000.0

	// PlayerGroundThreshold is the foot y beyond which the player counts as grounded
	PlayerGroundThreshold = WorldHeight - 55

	// PlayerHitImpulse is the per-axis impulse given to the ball (+x, -y)
	PlayerHitImpulse = 1100.0
)

// Bot control forces
const (
	BotMoveForce        = 6000.0
	BotJumpForce        = 100000.0
	BotGroundThreshold  = WorldHeight - 50
	BotHitImpulse       = 970.0
	BotWanderChance     = 0.3
	BotJumpReachX       = 50.0
	BotJumpClearanceY   = 10.0
	BotInterval         = 180 * time.Millisecond
	BotPoseHoldDuration = 200 * time.Millisecond
)

// Hit detection and arm pose
const (
	// HitRadius is the maximum hand-to-ball center distance for a hit
	HitRadius = 45.0

	// ArmRaiseAngle is the magnitude of the raised upper-arm angle
	ArmRaiseAngle = math.Pi / 2.2

	// ArmRestAngle is the upper-arm angle once a pose is released
	ArmRestAngle = 0.0
)

// Scoring
const (
	// ScoreThresholdY is the landing line; the ball's lower edge past it is a landing
	ScoreThresholdY = WorldHeight - 45
)

// Loop timing
const (
	// TickRate is the fixed physics step frequency
	TickRate = 120

	// FrameRate drives the HUD redraw loop
	FrameRate = 60

	// MaxStepsPerFrame bounds catch-up after a stall
	MaxStepsPerFrame = 8

	// KeyHoldWindow is how long a key stays held after its last press or repeat.
	// It must outlast the delay before auto-repeat starts, commonly 500 to 660ms,
	// or a held key drops out between the first press and the first repeat.
	KeyHoldWindow = 700 * time.Millisecond
)
