// Package physics builds the volleyball court on top of the Chipmunk2D engine.
// Integration, collision and constraint solving all belong to cp; this package
// only creates bodies, wires joints and offers the few mutators the game needs.
package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/ragdoll-volley/constant"
)

// Collision groups keep each ragdoll from colliding with itself
const (
	GroupPlayer uint = 1
	GroupBot    uint = 2
)

// BoundKind tags static geometry for the renderer
type BoundKind uint8

const (
	BoundGround BoundKind = iota
	BoundWall
	BoundNet
)

// Bound is one static segment of the court
type Bound struct {
	Kind   BoundKind
	A, B   cp.Vector
	Radius float64
	Shape  *cp.Shape
}

// Ball is the single volleyball
type Ball struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
}

// Position returns the ball center
func (b *Ball) Position() cp.Vector {
	return b.Body.Position()
}

// Bottom returns the y of the ball's lowest point
func (b *Ball) Bottom() float64 {
	return b.Body.Position().Y + b.Radius
}

// Impulse changes the ball velocity immediately
func (b *Ball) Impulse(j cp.Vector) {
	b.Body.ApplyImpulseAtWorldPoint(j, b.Body.Position())
}

// Reset places the ball at p, at rest
func (b *Ball) Reset(p cp.Vector) {
	b.Body.SetPosition(p)
	b.Body.SetVelocity(0, 0)
	b.Body.SetAngularVelocity(0)
	b.Body.SetForce(cp.Vector{})
}

// World is the court: static bounds, net, ball and both ragdolls
// Exactly one ball and two ragdolls exist for the lifetime of a World
type World struct {
	Space  *cp.Space
	Width  float64
	Height float64

	Bounds []Bound
	Ball   *Ball
	Player *Ragdoll
	Bot    *Ragdoll
}

// NewWorld builds the court at the standard size
func NewWorld() *World {
	w := &World{
		Space:  cp.NewSpace(),
		Width:  constant.WorldWidth,
		Height: constant.WorldHeight,
	}
	w.Space.SetGravity(cp.Vector{X: 0, Y: constant.Gravity})
	w.Space.Iterations = constant.SolverIterations

	w.addBounds()
	w.addBall()

	anchorY := constant.RagdollAnchorY
	w.Player = NewRagdoll(w.Space, "player", cp.Vector{X: constant.PlayerAnchorX, Y: anchorY}, constant.PlayerColor, GroupPlayer)
	w.Bot = NewRagdoll(w.Space, "bot", cp.Vector{X: constant.BotAnchorX, Y: anchorY}, constant.BotColor, GroupBot)

	return w
}

func (w *World) addBounds() {
	half := constant.WallThickness / 2
	netTop := w.Height - constant.NetHeight

	bounds := []Bound{
		{Kind: BoundGround, A: cp.Vector{X: 0, Y: w.Height - half}, B: cp.Vector{X: w.Width, Y: w.Height - half}, Radius: half},
		{Kind: BoundWall, A: cp.Vector{X: 0, Y: 0}, B: cp.Vector{X: 0, Y: w.Height}, Radius: half},
		{Kind: BoundWall, A: cp.Vector{X: w.Width, Y: 0}, B: cp.Vector{X: w.Width, Y: w.Height}, Radius: half},
		{Kind: BoundNet, A: cp.Vector{X: w.Width / 2, Y: netTop}, B: cp.Vector{X: w.Width / 2, Y: w.Height}, Radius: constant.NetWidth / 2},
	}

	for i := range bounds {
		b := &bounds[i]
		b.Shape = w.Space.AddShape(cp.NewSegment(w.Space.StaticBody, b.A, b.B, b.Radius))
		b.Shape.SetElasticity(constant.BoundsElasticity)
		b.Shape.SetFriction(constant.BoundsFriction)
	}
	w.Bounds = bounds
}

func (w *World) addBall() {
	r := constant.BallRadius
	mass := circleMass(r)
	body := w.Space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, r, cp.Vector{})))
	body.SetPosition(w.ServeSpot(false))

	shape := w.Space.AddShape(cp.NewCircle(body, r, cp.Vector{}))
	shape.SetElasticity(constant.BallElasticity)
	shape.SetFriction(constant.BallFriction)

	w.Ball = &Ball{Body: body, Shape: shape, Radius: r}
}

// Step advances the simulation by dt seconds
// Forces are per-step: whatever was applied before Step is gone after it
func (w *World) Step(dt float64) {
	w.Space.Step(dt)
	w.Ball.Body.SetForce(cp.Vector{})
	w.Player.clearForces()
	w.Bot.clearForces()
}

// ServeSpot is where a rally starts: mid-height, just off the net line on the
// bot's half when toBotHalf is set and on the player's half otherwise
func (w *World) ServeSpot(toBotHalf bool) cp.Vector {
	dx := -constant.ServeOffsetX
	if toBotHalf {
		dx = constant.ServeOffsetX
	}
	return cp.Vector{X: w.Width/2 + dx, Y: w.Height / 2}
}

// ResetRally drops the ball at its serve spot and returns both ragdolls to their spawn layout, all at rest
func (w *World) ResetRally(toBotHalf bool) {
	w.Ball.Reset(w.ServeSpot(toBotHalf))
	w.Player.Reset()
	w.Bot.Reset()
}

// Ragdolls returns both ragdolls, player first
func (w *World) Ragdolls() [2]*Ragdoll {
	return [2]*Ragdoll{w.Player, w.Bot}
}

// OnBotHalf reports whether x lies on the bot's (right) half of the court
func (w *World) OnBotHalf(x float64) bool {
	return x > w.Width/2
}
