package gridsnake

import (
	"math"

	"github.com/vovakirdan/waitroom/internal/core"
)

const (
	headRadius = 6
	bodyRadius = 4
	eyeRadius  = 3
	eyeSpread  = 5
	eyeLead    = 3
)

func (g *Game) draw(b core.Bounds) core.DrawList {
	n := float64(g.cfg.Grid)
	tw, th := b.W/n, b.H/n
	var l core.DrawList

	l.Clear(b.Rect())

	grid := core.Stroke{Color: g.palette.Ink.WithAlpha(0.05), Width: 1}
	for i := 0; i <= g.cfg.Grid; i++ {
		x, y := float64(i)*tw, float64(i)*th
		l.Line(core.Vec{X: x, Y: 0}, core.Vec{X: x, Y: b.H}, grid)
		l.Line(core.Vec{X: 0, Y: y}, core.Vec{X: b.W, Y: y}, grid)
	}
	l.StrokeRect(b.Rect(), core.Stroke{Color: g.palette.Accent, Width: 3})

	l.Text(g.cfg.FoodGlyph, g.center(g.food, tw, th), core.Font{
		Size:     math.Min(tw, th) * 0.9,
		Color:    g.palette.Accent,
		Align:    core.AlignCenter,
		Baseline: core.BaselineMiddle,
	})

	for i, seg := range g.body {
		cell := core.RectF{X: float64(seg.X)*tw + 1, Y: float64(seg.Y)*th + 1, W: tw - 2, H: th - 2}
		if i == 0 {
			l.RoundedRect(cell, headRadius, core.Fill{Color: g.palette.Accent})
			g.drawEyes(&l, g.center(seg, tw, th))
			continue
		}
		tone := g.palette.BodyLight
		if i%2 == 1 {
			tone = g.palette.BodyPale
		}
		l.RoundedRect(cell, bodyRadius, core.Fill{Color: tone})
	}
	return l
}

// drawEyes places two eyes ahead of the centre, side by side across the
// direction of travel.
func (g *Game) drawEyes(l *core.DrawList, c core.Vec) {
	d := g.dir
	lead := core.Vec{X: float64(d.DX) * eyeLead, Y: float64(d.DY) * eyeLead}
	var a, b core.Vec
	if d.DY != 0 {
		a = core.Vec{X: c.X - eyeSpread, Y: c.Y + lead.Y}
		b = core.Vec{X: c.X + eyeSpread, Y: c.Y + lead.Y}
	} else {
		a = core.Vec{X: c.X + lead.X, Y: c.Y - eyeSpread}
		b = core.Vec{X: c.X + lead.X, Y: c.Y + eyeSpread}
	}
	eye := core.Fill{Color: core.ColorWhite}
	l.Arc(a, eyeRadius, 0, 2*math.Pi, eye)
	l.Arc(b, eyeRadius, 0, 2*math.Pi, eye)
}

func (g *Game) center(p core.Point, tw, th float64) core.Vec {
	return core.Vec{X: (float64(p.X) + 0.5) * tw, Y: (float64(p.Y) + 0.5) * th}
}
