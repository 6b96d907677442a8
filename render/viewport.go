package render

import (
	"github.com/lixenwraith/chaser/vmath"
)

// Viewport maps the continuous canvas onto a block of terminal cells
// Row 0 of the screen holds the status bar, the canvas starts at Top
type Viewport struct {
	Cols, Rows int     // canvas cells
	Top        int     // first canvas row on screen
	W, H       float64 // canvas units
}

// NewViewport fits a w x h canvas into a screen of cols x rows cells below the status bar
func NewViewport(cols, rows int, w, h float64) Viewport {
	return Viewport{
		Cols: max(cols, 1),
		Rows: max(rows-statusBarRows, 1),
		Top:  statusBarRows,
		W:    w,
		H:    h,
	}
}

// ToCell returns the screen cell holding canvas point p
func (v Viewport) ToCell(p vmath.Vec2) (x, y int) {
	x = int(p.X / v.W * float64(v.Cols))
	y = int(p.Y / v.H * float64(v.Rows))
	x = min(max(x, 0), v.Cols-1)
	y = min(max(y, 0), v.Rows-1)
	return x, y + v.Top
}

// ToCanvas returns the canvas point at the center of screen cell (x, y)
// ok is false for cells outside the canvas area
func (v Viewport) ToCanvas(x, y int) (p vmath.Vec2, ok bool) {
	row := y - v.Top
	if x < 0 || x >= v.Cols || row < 0 || row >= v.Rows {
		return vmath.Vec2{}, false
	}
	return vmath.Vec2{
		X: (float64(x) + 0.5) / float64(v.Cols) * v.W,
		Y: (float64(row) + 0.5) / float64(v.Rows) * v.H,
	}, true
}

// CellSize returns the canvas extent of one cell
func (v Viewport) CellSize() (w, h float64) {
	return v.W / float64(v.Cols), v.H / float64(v.Rows)
}
