package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/ragdoll-volley/constant"
)

// PartID names one of the fourteen rigid parts of a ragdoll
type PartID uint8

const (
	Head PartID = iota
	Torso
	UpperArmL
	UpperArmR
	LowerArmL
	LowerArmR
	HandL
	HandR
	UpperLegL
	UpperLegR
	LowerLegL
	LowerLegR
	FootL
	FootR

	PartCount
)

// JointCount is fixed by the humanoid topology
const JointCount = 13

var partNames = [PartCount]string{
	"head", "torso",
	"upper_arm_l", "upper_arm_r", "lower_arm_l", "lower_arm_r", "hand_l", "hand_r",
	"upper_leg_l", "upper_leg_r", "lower_leg_l", "lower_leg_r", "foot_l", "foot_r",
}

func (id PartID) String() string {
	if id < PartCount {
		return partNames[id]
	}
	return "unknown"
}

// ShapeKind is the collision shape of a part
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// PartSpec is the spawn layout of one part relative to the ragdoll anchor
type PartSpec struct {
	Offset cp.Vector
	Kind   ShapeKind
	Radius float64 // circles
	W, H   float64 // boxes
}

// JointSpec connects two parts at body-local anchor points
type JointSpec struct {
	A, B             PartID
	AnchorA, AnchorB cp.Vector
}

var partLayout = [PartCount]PartSpec{
	Head:      {Offset: cp.Vector{X: 0, Y: -70}, Kind: ShapeCircle, Radius: 18},
	Torso:     {Offset: cp.Vector{X: 0, Y: -30}, Kind: ShapeBox, W: 16, H: 48},
	UpperArmL: {Offset: cp.Vector{X: -22, Y: -40}, Kind: ShapeBox, W: 32, H: 10},
	UpperArmR: {Offset: cp.Vector{X: 22, Y: -40}, Kind: ShapeBox, W: 32, H: 10},
	LowerArmL: {Offset: cp.Vector{X: -42, Y: -40}, Kind: ShapeBox, W: 28, H: 10},
	LowerArmR: {Offset: cp.Vector{X: 42, Y: -40}, Kind: ShapeBox, W: 28, H: 10},
	HandL:     {Offset: cp.Vector{X: -56, Y: -40}, Kind: ShapeCircle, Radius: 8},
	HandR:     {Offset: cp.Vector{X: 56, Y: -40}, Kind: ShapeCircle, Radius: 8},
	UpperLegL: {Offset: cp.Vector{X: -10, Y: 8}, Kind: ShapeBox, W: 12, H: 32},
	UpperLegR: {Offset: cp.Vector{X: 10, Y: 8}, Kind: ShapeBox, W: 12, H: 32},
	LowerLegL: {Offset: cp.Vector{X: -10, Y: 34}, Kind: ShapeBox, W: 12, H: 26},
	LowerLegR: {Offset: cp.Vector{X: 10, Y: 34}, Kind: ShapeBox, W: 12, H: 26},
	FootL:     {Offset: cp.Vector{X: -10, Y: 50}, Kind: ShapeCircle, Radius: 8},
	FootR:     {Offset: cp.Vector{X: 10, Y: 50}, Kind: ShapeCircle, Radius: 8},
}

var jointLayout = [JointCount]JointSpec{
	{Head, Torso, cp.Vector{X: 0, Y: 18}, cp.Vector{X: 0, Y: -24}},
	{Torso, UpperArmL, cp.Vector{X: -8, Y: -20}, cp.Vector{X: 16, Y: 0}},
	{Torso, UpperArmR, cp.Vector{X: 8, Y: -20}, cp.Vector{X: -16, Y: 0}},
	{UpperArmL, LowerArmL, cp.Vector{X: -16, Y: 0}, cp.Vector{X: 14, Y: 0}},
	{UpperArmR, LowerArmR, cp.Vector{X: 16, Y: 0}, cp.Vector{X: -14, Y: 0}},
	{LowerArmL, HandL, cp.Vector{X: -14, Y: 0}, cp.Vector{}},
	{LowerArmR, HandR, cp.Vector{X: 14, Y: 0}, cp.Vector{}},
	{Torso, UpperLegL, cp.Vector{X: -6, Y: 24}, cp.Vector{X: 0, Y: -14}},
	{Torso, UpperLegR, cp.Vector{X: 6, Y: 24}, cp.Vector{X: 0, Y: -14}},
	{UpperLegL, LowerLegL, cp.Vector{X: 0, Y: 14}, cp.Vector{X: 0, Y: -13}},
	{UpperLegR, LowerLegR, cp.Vector{X: 0, Y: 14}, cp.Vector{X: 0, Y: -13}},
	{LowerLegL, FootL, cp.Vector{X: 0, Y: 13}, cp.Vector{}},
	{LowerLegR, FootR, cp.Vector{X: 0, Y: 13}, cp.Vector{}},
}

// ArmSide selects the left or right arm chain
type ArmSide uint8

const (
	Left ArmSide = iota
	Right
)

var (
	upperArms = [2]PartID{UpperArmL, UpperArmR}
	hands     = [2]PartID{HandL, HandR}
)

// Part is one rigid body of a ragdoll
type Part struct {
	ID    PartID
	Spec  PartSpec
	Body  *cp.Body
	Shape *cp.Shape
}

// Joint is one spring constraint of a ragdoll
type Joint struct {
	Spec       JointSpec
	Constraint *cp.Constraint
}

// Ragdoll is a fixed aggregate of fourteen parts and thirteen joints
// It is created once per side and only ever mutated, never rebuilt
type Ragdoll struct {
	Name   string
	Color  int32
	Anchor cp.Vector
	Parts  [PartCount]*Part
	Joints [JointCount]*Joint
}

// NewRagdoll builds a humanoid at anchor and registers it into space
// Parts sharing group do not collide with each other
func NewRagdoll(space *cp.Space, name string, anchor cp.Vector, color int32, group uint) *Ragdoll {
	r := &Ragdoll{
		Name:   name,
		Color:  color,
		Anchor: anchor,
	}
	filter := cp.ShapeFilter{Group: group, Categories: cp.ALL_CATEGORIES, Mask: cp.ALL_CATEGORIES}

	for id := PartID(0); id < PartCount; id++ {
		spec := partLayout[id]

		var body *cp.Body
		var shape *cp.Shape
		switch spec.Kind {
		case ShapeCircle:
			mass := circleMass(spec.Radius)
			body = space.AddBody(cp.NewBody(mass, cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{})))
			shape = space.AddShape(cp.NewCircle(body, spec.Radius, cp.Vector{}))
		case ShapeBox:
			mass := spec.W * spec.H * constant.Density
			body = space.AddBody(cp.NewBody(mass, cp.MomentForBox(mass, spec.W, spec.H)))
			shape = space.AddShape(cp.NewBox(body, spec.W, spec.H, 0))
		}
		body.SetPosition(anchor.Add(spec.Offset))
		shape.SetElasticity(constant.LimbElasticity)
		shape.SetFriction(constant.LimbFriction)
		shape.SetFilter(filter)

		r.Parts[id] = &Part{ID: id, Spec: spec, Body: body, Shape: shape}
	}

	for i, spec := range jointLayout {
		c := space.AddConstraint(cp.NewDampedSpring(
			r.Parts[spec.A].Body, r.Parts[spec.B].Body,
			spec.AnchorA, spec.AnchorB,
			constant.JointRestLength, constant.JointStiffness, constant.JointDamping,
		))
		r.Joints[i] = &Joint{Spec: spec, Constraint: c}
	}

	return r
}

// Body returns the rigid body of a part
func (r *Ragdoll) Body(id PartID) *cp.Body {
	return r.Parts[id].Body
}

// Torso returns the body every control force is applied to
func (r *Ragdoll) Torso() *cp.Body {
	return r.Parts[Torso].Body
}

// Hand returns the hand body on side
func (r *Ragdoll) Hand(side ArmSide) *cp.Body {
	return r.Parts[hands[side]].Body
}

// TorsoHome is where Reset puts the torso: its spawn point, 30 above the anchor
// The anchor is the factory's reference point, not a part position
func (r *Ragdoll) TorsoHome() cp.Vector {
	return r.Anchor.Add(partLayout[Torso].Offset)
}

// PushTorso applies force at the torso center for the next step
func (r *Ragdoll) PushTorso(force cp.Vector) {
	torso := r.Torso()
	torso.ApplyForceAtWorldPoint(force, torso.Position())
}

// SetArmPose overrides the upper-arm angle on side
func (r *Ragdoll) SetArmPose(side ArmSide, angle float64) {
	r.Parts[upperArms[side]].Body.SetAngle(angle)
}

// ArmAngle returns the current upper-arm angle on side
func (r *Ragdoll) ArmAngle(side ArmSide) float64 {
	return r.Parts[upperArms[side]].Body.Angle()
}

// FootNearGround reports whether either foot is below y
// This is a height proxy, not contact detection; a foot dipping past y mid-bounce also counts
func (r *Ragdoll) FootNearGround(y float64) bool {
	return r.Parts[FootL].Body.Position().Y > y || r.Parts[FootR].Body.Position().Y > y
}

// HandsNear reports, per side, whether the hand center is strictly within radius of p
func (r *Ragdoll) HandsNear(p cp.Vector, radius float64) [2]bool {
	return [2]bool{
		r.Hand(Left).Position().Distance(p) < radius,
		r.Hand(Right).Position().Distance(p) < radius,
	}
}

// Reset returns every part to its spawn layout at rest
func (r *Ragdoll) Reset() {
	for _, p := range r.Parts {
		p.Body.SetPosition(r.Anchor.Add(p.Spec.Offset))
		p.Body.SetVelocity(0, 0)
		p.Body.SetAngle(0)
		p.Body.SetAngularVelocity(0)
		p.Body.SetForce(cp.Vector{})
	}
}

func (r *Ragdoll) clearForces() {
	for _, p := range r.Parts {
		p.Body.SetForce(cp.Vector{})
	}
}

func circleMass(radius float64) float64 {
	return cp.AreaForCircle(0, radius) * constant.Density
}
