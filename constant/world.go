package constant

// Court geometry in world units, origin top-left, y grows downward
const (
	WorldWidth  = 900.0
	WorldHeight = 600.0

	// WallThickness applies to the ground and both side walls
	WallThickness = 40.0

	NetWidth  = 18.0
	NetHeight = 160.0
)

// Derived court lines
const (
	// CourtMidX splits the player half (left) from the bot half (right)
	CourtMidX = WorldWidth / 2

	// FloorY is the top surface of the ground
	FloorY = WorldHeight - WallThickness
)

// ServeOffsetX shifts the ball's spawn off the net line toward one half.
// It clears the net cap (ball radius plus half the net width) so a served
// ball never comes to rest balanced on top of the net.
const ServeOffsetX = 40.0

// Spawn anchors passed to the ragdoll factory
const (
	PlayerAnchorX  = 180.0
	BotAnchorX     = WorldWidth - 180.0
	RagdollAnchorY = WorldHeight - 120.0
)
