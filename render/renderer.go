// Package render draws the court, both ragdolls, the ball and the HUD onto a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/ragdoll-volley/constant"
	"github.com/lixenwraith/ragdoll-volley/physics"
)

// Minimum screen size that still shows a playable court
const (
	MinCols = 40
	MinRows = 14
)

const helpLine = "a/d move  w jump  space hit  p pause  r restart  ? stats  m mute  q quit"

// Frame is everything one draw reads; the renderer never mutates game state
type Frame struct {
	World       *physics.World
	PlayerScore int
	BotScore    int
	Paused      bool
	Muted       bool
	Overlay     []string
}

// Renderer owns the screen for drawing
type Renderer struct {
	screen tcell.Screen
	color  bool

	background tcell.Style
	bounds     tcell.Style
	net        tcell.Style
	ball       tcell.Style
	joint      tcell.Style
	hud        tcell.Style
	banner     tcell.Style
}

// NewRenderer prepares styles for screen; color false draws monochrome
func NewRenderer(screen tcell.Screen, color bool) *Renderer {
	r := &Renderer{screen: screen, color: color}
	r.background = tcell.StyleDefault
	if color {
		r.background = r.background.Background(tcell.NewHexColor(constant.BackgroundColor))
	}
	r.bounds = r.style(constant.BoundsColor)
	r.net = r.style(constant.NetColor)
	r.ball = r.style(constant.BallColor).Bold(true)
	r.joint = r.style(constant.JointColor)
	r.hud = r.style(constant.HUDColor).Bold(true)
	r.banner = r.hud.Reverse(true)
	return r
}

// style returns a foreground style over the court background
func (r *Renderer) style(rgb int32) tcell.Style {
	if !r.color {
		return r.background
	}
	return r.background.Foreground(tcell.NewHexColor(rgb))
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(f Frame) {
	cols, rows := r.screen.Size()
	r.screen.Fill(' ', r.background)

	if cols < MinCols || rows < MinRows {
		r.text(0, 0, fmt.Sprintf("terminal too small: need %dx%d", MinCols, MinRows), r.hud)
		r.screen.Show()
		return
	}

	vp := NewViewport(cols, rows, f.World.Width, f.World.Height)

	r.drawBounds(vp, f.World.Bounds)
	for _, doll := range f.World.Ragdolls() {
		r.drawRagdoll(vp, doll)
	}
	r.drawBall(vp, f.World.Ball)
	r.drawHUD(vp, f)

	r.screen.Show()
}

func (r *Renderer) drawBounds(vp Viewport, bounds []physics.Bound) {
	for _, b := range bounds {
		glyph, st := constant.GlyphBounds, r.bounds
		if b.Kind == physics.BoundNet {
			glyph, st = constant.GlyphNet, r.net
		}
		// Court segments are axis-aligned; fill their padded bounding box
		minP := cp.Vector{X: math.Min(b.A.X, b.B.X) - b.Radius, Y: math.Min(b.A.Y, b.B.Y) - b.Radius}
		maxP := cp.Vector{X: math.Max(b.A.X, b.B.X) + b.Radius, Y: math.Max(b.A.Y, b.B.Y) + b.Radius}
		r.fillRect(vp, minP, maxP, glyph, st)
	}
}

func (r *Renderer) drawRagdoll(vp Viewport, doll *physics.Ragdoll) {
	body := r.style(doll.Color)

	for _, j := range doll.Joints {
		a := toWorld(doll.Body(j.Spec.A), j.Spec.AnchorA)
		b := toWorld(doll.Body(j.Spec.B), j.Spec.AnchorB)
		r.line(vp, a, b, constant.GlyphJoint, r.joint)
	}

	for _, p := range doll.Parts {
		glyph := partGlyph(p.ID)
		switch p.Spec.Kind {
		case physics.ShapeCircle:
			r.disc(vp, p.Body.Position(), p.Spec.Radius, glyph, body)
		case physics.ShapeBox:
			a, b := boxAxis(p)
			r.line(vp, a, b, glyph, body)
		}
	}
}

func (r *Renderer) drawBall(vp Viewport, ball *physics.Ball) {
	r.disc(vp, ball.Position(), ball.Radius, constant.GlyphBall, r.ball)
}

func (r *Renderer) drawHUD(vp Viewport, f Frame) {
	px, py := vp.Cell(cp.Vector{X: constant.HUDPlayerLabelX, Y: constant.HUDLabelY})
	r.text(px, py, fmt.Sprintf("You: %d", f.PlayerScore), r.hud)
	bx, by := vp.Cell(cp.Vector{X: constant.HUDBotLabelX, Y: constant.HUDLabelY})
	r.text(bx, by, fmt.Sprintf("Bot: %d", f.BotScore), r.hud)

	if f.Muted {
		r.centered(vp, py, "[muted]", r.hud)
	}

	for i, line := range f.Overlay {
		r.text(px, py+2+i, line, r.hud)
	}

	if f.Paused {
		r.centered(vp, vp.Rows/2, " PAUSED ", r.banner)
	}

	r.centered(vp, vp.Rows-1, helpLine, r.hud)
}

// line draws a supercover line between two world points
func (r *Renderer) line(vp Viewport, a, b cp.Vector, glyph rune, st tcell.Style) {
	x1, y1 := vp.Project(a)
	x2, y2 := vp.Project(b)
	t := NewGridTraverser(x1, y1, x2, y2)
	for t.Next() {
		col, row := t.Pos()
		r.put(vp, col, row, glyph, st)
	}
}

// disc fills cells whose centers lie inside a world circle; the center cell is always drawn
func (r *Renderer) disc(vp Viewport, c cp.Vector, radius float64, glyph rune, st tcell.Style) {
	minCol, minRow := vp.Cell(cp.Vector{X: c.X - radius, Y: c.Y - radius})
	maxCol, maxRow := vp.Cell(cp.Vector{X: c.X + radius, Y: c.Y + radius})
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if vp.CellCenter(col, row).Distance(c) < radius {
				r.put(vp, col, row, glyph, st)
			}
		}
	}
	col, row := vp.Cell(c)
	r.put(vp, col, row, glyph, st)
}

func (r *Renderer) fillRect(vp Viewport, minP, maxP cp.Vector, glyph rune, st tcell.Style) {
	minCol, minRow := vp.Cell(minP)
	maxCol, maxRow := vp.Cell(maxP)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			r.put(vp, col, row, glyph, st)
		}
	}
}

// put writes one cell, clipped to the viewport
func (r *Renderer) put(vp Viewport, col, row int, glyph rune, st tcell.Style) {
	if vp.Contains(col, row) {
		r.screen.SetContent(col, row, glyph, nil, st)
	}
}

func (r *Renderer) text(x, y int, s string, st tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, st)
	}
}

func (r *Renderer) centered(vp Viewport, row int, s string, st tcell.Style) {
	x := (vp.Cols - len([]rune(s))) / 2
	if x < 0 {
		x = 0
	}
	r.text(x, row, s, st)
}

// toWorld maps a body-local point to world space
func toWorld(body *cp.Body, local cp.Vector) cp.Vector {
	sin, cos := math.Sincos(body.Angle())
	p := body.Position()
	return cp.Vector{
		X: p.X + local.X*cos - local.Y*sin,
		Y: p.Y + local.X*sin + local.Y*cos,
	}
}

// boxAxis returns the world endpoints of a box part's long axis
func boxAxis(p *physics.Part) (cp.Vector, cp.Vector) {
	half := cp.Vector{X: p.Spec.W / 2}
	if p.Spec.H > p.Spec.W {
		half = cp.Vector{Y: p.Spec.H / 2}
	}
	return toWorld(p.Body, half.Neg()), toWorld(p.Body, half)
}

func partGlyph(id physics.PartID) rune {
	switch id {
	case physics.Head:
		return constant.GlyphHead
	case physics.Torso:
		return constant.GlyphTorso
	case physics.HandL, physics.HandR:
		return constant.GlyphHand
	case physics.FootL, physics.FootR:
		return constant.GlyphFoot
	case physics.UpperLegL, physics.UpperLegR, physics.LowerLegL, physics.LowerLegR:
		return constant.GlyphLeg
	}
	return constant.GlyphLimb
}
