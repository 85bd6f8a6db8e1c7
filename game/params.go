package game

import (
	"time"

	"github.com/lixenwraith/ragdoll-volley/constant"
)

// Params is the gameplay tuning shared by both controllers and the score tracker
type Params struct {
	// Player
	MoveForce       float64
	JumpForce       float64
	GroundThreshold float64
	HitImpulse      float64

	// Bot
	BotMoveForce       float64
	BotJumpForce       float64
	BotGroundThreshold float64
	BotHitImpulse      float64
	BotWanderChance    float64
	BotJumpReachX      float64
	BotJumpClearanceY  float64
	BotInterval        time.Duration
	BotPoseHold        time.Duration

	// Shared
	HitRadius      float64
	ArmRaiseAngle  float64
	ScoreThreshold float64
}

// DefaultParams returns the standard tuning
func DefaultParams() Params {
	return Params{
		MoveForce:       constant.PlayerMoveForce,
		JumpForce:       constant.PlayerJumpForce,
		GroundThreshold: constant.PlayerGroundThreshold,
		HitImpulse:      constant.PlayerHitImpulse,

		BotMoveForce:       constant.BotMoveForce,
		BotJumpForce:       constant.BotJumpForce,
		BotGroundThreshold: constant.BotGroundThreshold,
		BotHitImpulse:      constant.BotHitImpulse,
		BotWanderChance:    constant.BotWanderChance,
		BotJumpReachX:      constant.BotJumpReachX,
		BotJumpClearanceY:  constant.BotJumpClearanceY,
		BotInterval:        constant.BotInterval,
		BotPoseHold:        constant.BotPoseHoldDuration,

		HitRadius:      constant.HitRadius,
		ArmRaiseAngle:  constant.ArmRaiseAngle,
		ScoreThreshold: constant.ScoreThresholdY,
	}
}

// raisedAngle is the raised upper-arm angle for side
// Upper arms mirror each other, so raising turns them in opposite directions
func (p *Params) raisedAngle(side int) float64 {
	if side == 0 {
		return p.ArmRaiseAngle
	}
	return -p.ArmRaiseAngle
}
