package core

import "testing"

type recordingSurface struct {
	calls []string
}

func (r *recordingSurface) ClearRect(RectF)                              { r.calls = append(r.calls, "clear") }
func (r *recordingSurface) StrokeLine(Vec, Vec, Stroke)                  { r.calls = append(r.calls, "line") }
func (r *recordingSurface) StrokeRect(RectF, Stroke)                     { r.calls = append(r.calls, "stroke") }
func (r *recordingSurface) FillRect(RectF, Fill)                         { r.calls = append(r.calls, "fill") }
func (r *recordingSurface) FillRoundedRect(RectF, float64, Fill)         { r.calls = append(r.calls, "round") }
func (r *recordingSurface) FillArc(Vec, float64, float64, float64, Fill) { r.calls = append(r.calls, "arc") }
func (r *recordingSurface) FillText(string, Vec, Font)                   { r.calls = append(r.calls, "text") }

func TestDrawListReplayOrder(t *testing.T) {
	var l DrawList
	l.Clear(RectF{W: 10, H: 10})
	l.Line(Vec{}, Vec{X: 10}, Stroke{Color: ColorInk, Width: 2})
	l.RoundedRect(RectF{W: 4, H: 4}, 2, Fill{Color: ColorAccent})
	l.Arc(Vec{X: 5, Y: 5}, 3, 0, 6.28, Fill{Color: ColorWhite})
	l.Text("@", Vec{X: 1, Y: 1}, Font{Size: 40})
	l.StrokeRect(RectF{W: 10, H: 10}, Stroke{Width: 3})
	l.FillRect(RectF{W: 1, H: 1}, Fill{})

	s := &recordingSurface{}
	l.Replay(s)

	expected := []string{"clear", "line", "round", "arc", "text", "stroke", "fill"}
	if len(s.calls) != len(expected) {
		t.Fatalf("replayed %d ops, expected %d", len(s.calls), len(expected))
	}
	for i := range expected {
		if s.calls[i] != expected[i] {
			t.Errorf("op %d = %s, expected %s", i, s.calls[i], expected[i])
		}
	}
}

func TestDrawListCount(t *testing.T) {
	var l DrawList
	l.Text("a", Vec{}, Font{})
	l.Text("b", Vec{}, Font{})
	l.Clear(RectF{})

	if got := l.Count(OpText); got != 2 {
		t.Errorf("Count(OpText) = %d, expected 2", got)
	}
	if got := l.Count(OpArc); got != 0 {
		t.Errorf("Count(OpArc) = %d, expected 0", got)
	}

	// Nil surface is ignored
	l.Replay(nil)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"#FF8450", Color{R: 0xFF, G: 0x84, B: 0x50, A: 0xFF}, false},
		{"#fff", Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, false},
		{"#4B444480", Color{R: 0x4B, G: 0x44, B: 0x44, A: 0x80}, false},
		{"FF8450", Color{}, true},
		{"#12345", Color{}, true},
		{"#GGGGGG", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("ParseHex(%q) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}
