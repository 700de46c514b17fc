package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vovakirdan/waitroom/internal/core"
	"github.com/vovakirdan/waitroom/internal/scale"
)

func mounted(t *testing.T, w, h, dpr float64) *Canvas {
	t.Helper()
	c := New(w, h, dpr)
	if _, ok := scale.Setup(c); !ok {
		t.Fatal("scale.Setup() = false")
	}
	return c
}

func TestBackingFollowsPixelRatio(t *testing.T) {
	c := mounted(t, 100, 50, 2)

	b := c.Image().Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("backing = %dx%d, expected 200x100", b.Dx(), b.Dy())
	}
}

func TestFillRectUsesLogicalUnits(t *testing.T) {
	c := mounted(t, 100, 100, 2)
	c.FillRect(core.RectF{X: 10, Y: 10, W: 10, H: 10}, core.Fill{Color: core.ColorAccent})

	img := c.Image()
	r, g, b, a := img.At(30, 30).RGBA()
	wr, wg, wb, wa := core.ColorAccent.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("pixel (30,30) = %v, expected accent", img.At(30, 30))
	}
	if _, _, _, a := img.At(10, 10).RGBA(); a != 0 {
		t.Error("pixel outside the logical rect should stay transparent")
	}
}

func TestClearRect(t *testing.T) {
	c := mounted(t, 20, 20, 1)
	c.FillRect(core.RectF{W: 20, H: 20}, core.Fill{Color: core.ColorInk})
	c.ClearRect(core.RectF{W: 10, H: 20})

	if _, _, _, a := c.Image().At(5, 5).RGBA(); a != 0 {
		t.Error("cleared region should be transparent")
	}
	if _, _, _, a := c.Image().At(15, 5).RGBA(); a == 0 {
		t.Error("region outside ClearRect should keep its fill")
	}

	c.SetBackground(core.ColorWhite)
	c.ClearRect(core.RectF{W: 20, H: 20})
	if r, _, _, _ := c.Image().At(15, 5).RGBA(); r != 0xffff {
		t.Error("ClearRect should paint the background colour")
	}
}

func TestShadowSpreadsOutsideShape(t *testing.T) {
	c := mounted(t, 100, 100, 1)
	c.FillRoundedRect(core.RectF{X: 40, Y: 40, W: 20, H: 20}, 4, core.Fill{
		Color:       core.ColorAccent,
		ShadowBlur:  10,
		ShadowColor: core.ColorShadow,
	})

	if _, _, _, a := c.Image().At(37, 50).RGBA(); a == 0 {
		t.Error("blurred shadow should bleed past the shape edge")
	}
}

func TestUnmountedIsNoop(t *testing.T) {
	c := New(100, 100, 1)

	// None of these may panic before setup.
	var l core.DrawList
	l.Clear(core.RectF{W: 100, H: 100})
	l.Text("@", core.Vec{X: 50, Y: 50}, core.Font{Size: 40})
	l.Replay(c)

	if c.Mounted() {
		t.Error("canvas should not be mounted before setup")
	}
	if err := c.EncodePNG(&bytes.Buffer{}); err == nil {
		t.Error("EncodePNG before setup should fail")
	}
	if c.Thumbnail(32) != nil {
		t.Error("Thumbnail before setup should be nil")
	}
}

func TestEncodePNGAndThumbnail(t *testing.T) {
	c := mounted(t, 100, 100, 2)
	c.FillText("Hi", core.Vec{X: 50, Y: 50}, core.Font{Size: 26, Color: core.ColorInk, Align: core.AlignCenter})

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 200 {
		t.Errorf("decoded width = %d, expected 200", img.Bounds().Dx())
	}

	thumb := c.Thumbnail(50)
	if thumb.Bounds().Dx() != 50 || thumb.Bounds().Dy() != 50 {
		t.Errorf("thumbnail = %v, expected 50x50", thumb.Bounds())
	}
}
