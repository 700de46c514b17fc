// Package raster renders frames into images with fogleman/gg.
package raster

import (
	"errors"
	"image"
	"image/draw"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/vovakirdan/waitroom/internal/core"
)

var errUnmounted = errors.New("raster: canvas has no backing buffer")

// glyphHeight is the pixel height of gg's built-in face; text is scaled from it.
const glyphHeight = 13.0

// Canvas is an off-screen raster surface.
type Canvas struct {
	dc         *gg.Context
	rect       core.Size
	density    float64
	sx, sy     float64
	background core.Color
}

// New creates a canvas with a logical size and device pixel ratio. The
// backing buffer is allocated by scale.Setup.
func New(w, h, pixelRatio float64) *Canvas {
	return &Canvas{
		rect:    core.Size{W: w, H: h},
		density: pixelRatio,
		sx:      1,
		sy:      1,
	}
}

// SetBackground sets the colour ClearRect paints. The zero value clears to
// transparent.
func (c *Canvas) SetBackground(bg core.Color) {
	c.background = bg
}

// SetPixelRatio changes the density used by the next scale.Setup.
func (c *Canvas) SetPixelRatio(r float64) {
	c.density = r
}

// Rect implements scale.Element.
func (c *Canvas) Rect() core.Size { return c.rect }

// Density implements scale.Element.
func (c *Canvas) Density() (x, y float64) { return c.density, c.density }

// Resize implements scale.Element.
func (c *Canvas) Resize(w, h int) {
	c.dc = gg.NewContext(w, h)
}

// SetTransform implements scale.Element.
func (c *Canvas) SetTransform(sx, sy float64) {
	c.sx, c.sy = sx, sy
	if c.dc == nil {
		return
	}
	c.dc.Identity()
	c.dc.Scale(sx, sy)
}

// Mounted reports whether the backing buffer exists.
func (c *Canvas) Mounted() bool {
	return c.dc != nil
}

// Image returns the backing buffer, or nil before setup.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return nil
	}
	return c.dc.Image()
}

// EncodePNG writes the backing buffer as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.dc == nil {
		return errUnmounted
	}
	return c.dc.EncodePNG(w)
}

// Thumbnail returns the frame scaled to fit within size×size pixels.
func (c *Canvas) Thumbnail(size int) image.Image {
	if c.dc == nil || size <= 0 {
		return nil
	}
	return imaging.Fit(c.dc.Image(), size, size, imaging.Lanczos)
}

// device converts a logical rectangle to backing pixels.
func (c *Canvas) device(r core.RectF) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X*c.sx)),
		int(math.Floor(r.Y*c.sy)),
		int(math.Ceil(r.Right()*c.sx)),
		int(math.Ceil(r.Bottom()*c.sy)),
	)
}

// ClearRect implements core.Surface.
func (c *Canvas) ClearRect(r core.RectF) {
	if c.dc == nil {
		return
	}
	dst, ok := c.dc.Image().(draw.Image)
	if !ok {
		return
	}
	area := c.device(r).Intersect(dst.Bounds())
	draw.Draw(dst, area, image.NewUniform(c.background), image.Point{}, draw.Src)
}

// StrokeLine implements core.Surface.
func (c *Canvas) StrokeLine(from, to core.Vec, s core.Stroke) {
	if c.dc == nil {
		return
	}
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.dc.Stroke()
}

// StrokeRect implements core.Surface.
func (c *Canvas) StrokeRect(r core.RectF, s core.Stroke) {
	if c.dc == nil {
		return
	}
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Stroke()
}

// FillRect implements core.Surface.
func (c *Canvas) FillRect(r core.RectF, f core.Fill) {
	c.fill(f, func(dc *gg.Context) { dc.DrawRectangle(r.X, r.Y, r.W, r.H) })
}

// FillRoundedRect implements core.Surface.
func (c *Canvas) FillRoundedRect(r core.RectF, radius float64, f core.Fill) {
	c.fill(f, func(dc *gg.Context) { dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius) })
}

// FillArc implements core.Surface.
func (c *Canvas) FillArc(center core.Vec, radius, start, end float64, f core.Fill) {
	c.fill(f, func(dc *gg.Context) {
		dc.MoveTo(center.X, center.Y)
		dc.DrawArc(center.X, center.Y, radius, start, end)
		dc.ClosePath()
	})
}

// fill paints a path, preceded by a blurred shadow layer when requested.
func (c *Canvas) fill(f core.Fill, path func(dc *gg.Context)) {
	if c.dc == nil {
		return
	}
	if f.ShadowBlur > 0 && f.ShadowColor.A > 0 {
		c.shadow(f, path)
	}
	c.dc.SetColor(f.Color)
	path(c.dc)
	c.dc.Fill()
}

func (c *Canvas) shadow(f core.Fill, path func(dc *gg.Context)) {
	b := c.dc.Image().Bounds()
	layer := gg.NewContext(b.Dx(), b.Dy())
	layer.Scale(c.sx, c.sy)
	layer.SetColor(f.ShadowColor)
	path(layer)
	layer.Fill()

	// Canvas shadowBlur is twice the gaussian sigma.
	blurred := imaging.Blur(layer.Image(), f.ShadowBlur*c.sx/2)

	c.dc.Push()
	c.dc.Identity()
	c.dc.DrawImage(blurred, 0, 0)
	c.dc.Pop()
}

// FillText implements core.Surface.
func (c *Canvas) FillText(text string, at core.Vec, f core.Font) {
	if c.dc == nil || text == "" {
		return
	}
	ax := 0.0
	switch f.Align {
	case core.AlignCenter:
		ax = 0.5
	case core.AlignRight:
		ax = 1
	}
	ay := 0.0
	switch f.Baseline {
	case core.BaselineMiddle:
		ay = 0.5
	case core.BaselineTop:
		ay = 1
	}

	k := 1.0
	if f.Size > 0 {
		k = f.Size / glyphHeight
	}
	c.dc.Push()
	c.dc.SetColor(f.Color)
	c.dc.ScaleAbout(k, k, at.X, at.Y)
	c.dc.DrawStringAnchored(text, at.X, at.Y, ax, ay)
	c.dc.Pop()
}
