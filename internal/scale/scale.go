// Package scale maps a drawing surface's physical buffer onto a stable
// logical coordinate space. Games only ever see logical units; device pixels
// (or terminal cells) stay behind the Element implementation.
package scale

import (
	"math"

	"github.com/vovakirdan/waitroom/internal/core"
)

// Element is a drawing surface that can be measured and scaled.
type Element interface {
	// Rect returns the on-screen size in logical units.
	Rect() core.Size
	// Density returns device units per logical unit on each axis.
	Density() (x, y float64)
	// Resize reallocates the backing buffer in device units.
	Resize(w, h int)
	// SetTransform makes subsequent draw calls multiply logical coordinates
	// by (sx, sy).
	SetTransform(sx, sy float64)
}

// Setup sizes el's backing buffer to rect × density and installs the matching
// transform. It returns the logical bounds simulations should use. A nil or
// unmounted element reports false and is left untouched.
func Setup(el Element) (core.Bounds, bool) {
	if el == nil {
		return core.Bounds{}, false
	}
	rect := el.Rect()
	if rect.Empty() {
		return core.Bounds{}, false
	}

	dx, dy := el.Density()
	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		dx = 1
	}
	if dy <= 0 || math.IsNaN(dy) || math.IsInf(dy, 0) {
		dy = 1
	}

	el.Resize(Backing(rect.W, dx), Backing(rect.H, dy))
	el.SetTransform(dx, dy)
	return core.Bounds{W: rect.W, H: rect.H}, true
}

// Backing converts a logical length to whole device units.
func Backing(logical, density float64) int {
	return max(int(math.Round(logical*density)), 1)
}
