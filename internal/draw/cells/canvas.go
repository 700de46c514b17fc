// Package cells renders frames into a terminal character buffer.
//
// The logical surface keeps its configured size (500×500 by default); density
// is the number of terminal cells per logical unit on each axis, so the same
// simulation runs unchanged in any terminal size.
package cells

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/waitroom/internal/core"
)

const (
	blockRune = '█'
	// faintAlpha hides strokes too light to read as text (grid lines).
	faintAlpha = 0x20
	// eps absorbs float error when a logical edge lands on a cell boundary.
	eps = 1e-9
)

// Canvas is a terminal surface backed by core.Screen.
type Canvas struct {
	screen     *core.Screen
	rect       core.Size
	cols, rows int
	sx, sy     float64
}

// New creates a canvas with a logical size. SetArea must be called with the
// terminal area before scale.Setup can mount it.
func New(w, h float64) *Canvas {
	return &Canvas{
		screen: core.NewScreen(0, 0),
		rect:   core.Size{W: w, H: h},
	}
}

// SetArea sets the number of terminal cells available to the canvas.
func (c *Canvas) SetArea(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
}

// Area returns the terminal cells available to the canvas.
func (c *Canvas) Area() (cols, rows int) {
	return c.cols, c.rows
}

// Screen returns the backing buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Rect implements scale.Element. A canvas without area reports an empty
// rectangle so it is treated as unmounted.
func (c *Canvas) Rect() core.Size {
	if c.cols == 0 || c.rows == 0 {
		return core.Size{}
	}
	return c.rect
}

// Density implements scale.Element.
func (c *Canvas) Density() (x, y float64) {
	if c.rect.Empty() {
		return 0, 0
	}
	return float64(c.cols) / c.rect.W, float64(c.rows) / c.rect.H
}

// Resize implements scale.Element.
func (c *Canvas) Resize(w, h int) {
	c.screen.Resize(w, h)
}

// SetTransform implements scale.Element.
func (c *Canvas) SetTransform(sx, sy float64) {
	c.sx, c.sy = sx, sy
}

// ToLogical converts a terminal cell to the logical coordinate of its centre.
func (c *Canvas) ToLogical(col, row int) core.Vec {
	if c.sx == 0 || c.sy == 0 {
		return core.Vec{}
	}
	return core.Vec{X: (float64(col) + 0.5) / c.sx, Y: (float64(row) + 0.5) / c.sy}
}

// cell maps a logical point to the cell containing it.
func (c *Canvas) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X*c.sx + eps)), int(math.Floor(p.Y*c.sy + eps))
}

// span maps a logical rectangle to cells, covering at least one cell.
func (c *Canvas) span(r core.RectF) core.Rect {
	x0, y0 := c.cell(core.Vec{X: r.X, Y: r.Y})
	x1 := int(math.Ceil(r.Right()*c.sx - eps))
	y1 := int(math.Ceil(r.Bottom()*c.sy - eps))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// ClearRect implements core.Surface.
func (c *Canvas) ClearRect(r core.RectF) {
	c.screen.DrawRect(c.span(r), ' ', core.Color{})
}

// StrokeLine implements core.Surface.
func (c *Canvas) StrokeLine(from, to core.Vec, s core.Stroke) {
	if s.Color.A < faintAlpha {
		return
	}
	x0, y0 := c.cell(from)
	x1, y1 := c.cell(to)
	switch {
	case y0 == y1:
		c.screen.DrawHLine(min(x0, x1), y0, abs(x1-x0)+1, '─', s.Color)
	case x0 == x1:
		c.screen.DrawVLine(x0, min(y0, y1), abs(y1-y0)+1, '│', s.Color)
	default:
		steps := max(abs(x1-x0), abs(y1-y0))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := int(math.Round(float64(x0) + t*float64(x1-x0)))
			y := int(math.Round(float64(y0) + t*float64(y1-y0)))
			c.screen.Set(x, y, '·', s.Color)
		}
	}
}

// StrokeRect implements core.Surface.
func (c *Canvas) StrokeRect(r core.RectF, s core.Stroke) {
	if s.Color.A < faintAlpha {
		return
	}
	span := c.span(r)
	// Keep the far edges on screen when the rect covers the whole surface.
	span.W = min(span.W, c.screen.Width()-span.X)
	span.H = min(span.H, c.screen.Height()-span.Y)
	c.screen.DrawBox(span, s.Color)
}

// FillRect implements core.Surface.
func (c *Canvas) FillRect(r core.RectF, f core.Fill) {
	c.screen.DrawRect(c.span(r), blockRune, f.Color)
}

// FillRoundedRect implements core.Surface. Corners are too small to show in
// cells, and shadows are dropped.
func (c *Canvas) FillRoundedRect(r core.RectF, _ float64, f core.Fill) {
	c.FillRect(r, f)
}

// FillArc implements core.Surface as a single dot at the centre.
func (c *Canvas) FillArc(center core.Vec, _, _, _ float64, f core.Fill) {
	x, y := c.cell(center)
	c.screen.Set(x, y, '•', f.Color)
}

// FillText implements core.Surface. Alignment is honoured horizontally; the
// text always occupies the row containing the anchor.
func (c *Canvas) FillText(text string, at core.Vec, f core.Font) {
	x, y := c.cell(at)
	n := utf8.RuneCountInString(text)
	switch f.Align {
	case core.AlignCenter:
		x -= n / 2
	case core.AlignRight:
		x -= n
	}
	c.screen.DrawText(x, y, text, f.Color)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
