package game

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/ragdoll-volley/constant"
	"github.com/lixenwraith/ragdoll-volley/input"
	"github.com/lixenwraith/ragdoll-volley/physics"
)

// InputController turns the human's input state into forces on the player ragdoll
type InputController struct {
	doll   *physics.Ragdoll
	params *Params
}

// NewInputController binds a controller to the player ragdoll
func NewInputController(doll *physics.Ragdoll, params *Params) *InputController {
	return &InputController{doll: doll, params: params}
}

// Apply pushes the torso once for each held movement action
// Called exactly once per physics step, before the step
func (c *InputController) Apply(state *input.State) {
	p := c.params
	if state.Held(input.ActionLeft) {
		c.doll.PushTorso(cp.Vector{X: -p.MoveForce})
	}
	if state.Held(input.ActionRight) {
		c.doll.PushTorso(cp.Vector{X: p.MoveForce})
	}
	if state.Held(input.ActionJump) && c.doll.FootNearGround(p.GroundThreshold) {
		c.doll.PushTorso(cp.Vector{Y: -p.JumpForce})
	}
}

// HandleEdge reacts to a held-state transition and returns how many hit impulses reached the ball
func (c *InputController) HandleEdge(e input.Edge, ball *physics.Ball) int {
	if e.Action != input.ActionHit {
		return 0
	}
	if !e.Down {
		c.doll.SetArmPose(physics.Left, constant.ArmRestAngle)
		c.doll.SetArmPose(physics.Right, constant.ArmRestAngle)
		return 0
	}

	c.doll.SetArmPose(physics.Left, c.params.raisedAngle(int(physics.Left)))
	c.doll.SetArmPose(physics.Right, c.params.raisedAngle(int(physics.Right)))

	hits := 0
	j := c.params.HitImpulse
	for _, near := range c.doll.HandsNear(ball.Position(), c.params.HitRadius) {
		if near {
			ball.Impulse(cp.Vector{X: j, Y: -j})
			hits++
		}
	}
	return hits
}
