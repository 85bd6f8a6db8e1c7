package constant

// Body colors as 0xRRGGBB, matching the original palette
const (
	PlayerColor     = 0x5599ff
	BotColor        = 0xffaa44
	BallColor       = 0xf8f8aa
	BoundsColor     = 0x666666
	NetColor        = 0xffffff
	BackgroundColor = 0x333333
	HUDColor        = 0xffffff
	JointColor      = 0x888888
)

// HUD label anchors in world units
const (
	HUDPlayerLabelX = 60.0
	HUDBotLabelX    = WorldWidth - 160.0
	HUDLabelY       = 50.0
)

// Glyphs
const (
	GlyphBall   = 'O'
	GlyphHead   = '@'
	GlyphTorso  = '#'
	GlyphLimb   = '='
	GlyphLeg    = '|'
	GlyphHand   = '*'
	GlyphFoot   = '_'
	GlyphJoint  = '.'
	GlyphBounds = '█'
	GlyphNet    = '┃'
)
