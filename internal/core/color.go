package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA colour. It satisfies image/color.Color so raster
// surfaces can use it directly.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA implements image/color.Color (alpha-premultiplied, 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	r |= r << 8
	g |= g << 8
	b |= b << 8
	a |= a << 8
	return r, g, b, a
}

// WithAlpha returns c with a replaced alpha channel (0..1).
func (c Color) WithAlpha(alpha float64) Color {
	c.A = uint8(ClampF(alpha, 0, 1) * 0xff)
	return c
}

// Hex formats the colour as #RRGGBB (alpha dropped).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (Color, error) {
	h, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return Color{}, fmt.Errorf("core: invalid colour %q: missing #", s)
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("core: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is ParseHex for package-level palettes.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette used by the built-in games.
var (
	ColorInk       = MustHex("#4B4444")
	ColorAccent    = MustHex("#FF8450")
	ColorBodyLight = MustHex("#FFB3A1")
	ColorBodyPale  = MustHex("#FFCFCC")
	ColorWhite     = MustHex("#FFFFFF")
	ColorGrid      = ColorInk.WithAlpha(0.05)
	ColorShadow    = ColorAccent.WithAlpha(0.3)
)
