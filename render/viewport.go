package render

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Viewport projects world units onto terminal cells
// Both axes stretch independently, so the whole court is always visible
type Viewport struct {
	Cols, Rows int
	scaleX     float64
	scaleY     float64
}

// NewViewport fits a world of worldW × worldH into cols × rows cells
func NewViewport(cols, rows int, worldW, worldH float64) Viewport {
	return Viewport{
		Cols:   cols,
		Rows:   rows,
		scaleX: float64(cols) / worldW,
		scaleY: float64(rows) / worldH,
	}
}

// Project returns fractional cell coordinates of a world point
func (v Viewport) Project(p cp.Vector) (float64, float64) {
	return p.X * v.scaleX, p.Y * v.scaleY
}

// Cell returns the cell containing a world point
func (v Viewport) Cell(p cp.Vector) (int, int) {
	x, y := v.Project(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// CellCenter returns the world point at the middle of a cell
func (v Viewport) CellCenter(col, row int) cp.Vector {
	return cp.Vector{X: (float64(col) + 0.5) / v.scaleX, Y: (float64(row) + 0.5) / v.scaleY}
}

// Contains reports whether a cell is on screen
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
