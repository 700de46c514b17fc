package scale

import (
	"testing"

	"github.com/vovakirdan/waitroom/internal/core"
)

type fakeElement struct {
	rect       core.Size
	dx, dy     float64
	w, h       int
	sx, sy     float64
	resizes    int
	transforms int
}

func (f *fakeElement) Rect() core.Size         { return f.rect }
func (f *fakeElement) Density() (x, y float64) { return f.dx, f.dy }
func (f *fakeElement) Resize(w, h int)         { f.w, f.h = w, h; f.resizes++ }
func (f *fakeElement) SetTransform(sx, sy float64) {
	f.sx, f.sy = sx, sy
	f.transforms++
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		el           *fakeElement
		wantW, wantH int
		wantSX       float64
	}{
		{
			name:  "unit density",
			el:    &fakeElement{rect: core.Size{W: 500, H: 500}, dx: 1, dy: 1},
			wantW: 500, wantH: 500, wantSX: 1,
		},
		{
			name:  "retina",
			el:    &fakeElement{rect: core.Size{W: 500, H: 500}, dx: 2, dy: 2},
			wantW: 1000, wantH: 1000, wantSX: 2,
		},
		{
			name:  "fractional",
			el:    &fakeElement{rect: core.Size{W: 500, H: 300}, dx: 1.5, dy: 1.5},
			wantW: 750, wantH: 450, wantSX: 1.5,
		},
		{
			name:  "missing density falls back to 1",
			el:    &fakeElement{rect: core.Size{W: 320, H: 200}},
			wantW: 320, wantH: 200, wantSX: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, ok := Setup(tc.el)
			if !ok {
				t.Fatal("Setup() = false, expected true")
			}
			if b.W != tc.el.rect.W || b.H != tc.el.rect.H {
				t.Errorf("bounds = %+v, expected logical size %+v", b, tc.el.rect)
			}
			if tc.el.w != tc.wantW || tc.el.h != tc.wantH {
				t.Errorf("backing = %dx%d, expected %dx%d", tc.el.w, tc.el.h, tc.wantW, tc.wantH)
			}
			if tc.el.sx != tc.wantSX {
				t.Errorf("transform sx = %v, expected %v", tc.el.sx, tc.wantSX)
			}
		})
	}
}

func TestSetupUnmounted(t *testing.T) {
	if _, ok := Setup(nil); ok {
		t.Error("Setup(nil) should report false")
	}

	el := &fakeElement{dx: 2, dy: 2}
	if _, ok := Setup(el); ok {
		t.Error("Setup on an empty rect should report false")
	}
	if el.resizes != 0 || el.transforms != 0 {
		t.Error("unmounted element must not be touched")
	}
}

func TestSetupIsRepeatable(t *testing.T) {
	el := &fakeElement{rect: core.Size{W: 500, H: 500}, dx: 2, dy: 2}
	Setup(el)

	// Surface moved to a denser display between activations.
	el.dx, el.dy = 3, 3
	b, _ := Setup(el)
	if el.w != 1500 || b.W != 500 {
		t.Errorf("after re-setup backing = %d bounds = %v, expected 1500 and 500", el.w, b.W)
	}
}
