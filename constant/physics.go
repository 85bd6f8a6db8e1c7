package constant

// Engine settings
const (
	// Gravity matches the original canvas game: 1000 units/s^2 downward
	Gravity = 1000.0

	// SolverIterations for the constraint solver
	SolverIterations = 20

	// Density converts shape area to mass
	Density = 0.001
)

// Ball material
const (
	BallRadius     = 22.0
	BallElasticity = 0.88
	BallFriction   = 0.001
)

// Static geometry material
const (
	BoundsElasticity = 0.6
	BoundsFriction   = 0.8
)

// Ragdoll material and joint springs
const (
	LimbElasticity = 0.2
	LimbFriction   = 0.7

	JointRestLength = 2.0
	JointStiffness  = 900.0
	JointDamping    = 12.0
)
