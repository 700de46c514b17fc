package core

// Align controls horizontal text placement relative to the anchor point.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline controls vertical text placement relative to the anchor point.
type Baseline uint8

const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
	BaselineTop
)

// Stroke describes how outlines are drawn.
type Stroke struct {
	Color Color
	Width float64
}

// Fill describes how solid shapes are painted. A positive ShadowBlur draws a
// soft shadow in ShadowColor underneath the shape.
type Fill struct {
	Color       Color
	ShadowBlur  float64
	ShadowColor Color
}

// Font describes text rendering.
type Font struct {
	Size     float64
	Color    Color
	Align    Align
	Baseline Baseline
}

// Surface is the drawing contract a frame is replayed onto. All coordinates are
// logical units; implementations own the mapping to device pixels or cells.
type Surface interface {
	ClearRect(r RectF)
	StrokeLine(from, to Vec, s Stroke)
	StrokeRect(r RectF, s Stroke)
	FillRect(r RectF, f Fill)
	FillRoundedRect(r RectF, radius float64, f Fill)
	FillArc(center Vec, radius, start, end float64, f Fill)
	FillText(text string, at Vec, f Font)
}

// OpKind identifies a draw instruction.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpLine
	OpStrokeRect
	OpFillRect
	OpRoundedRect
	OpArc
	OpText
)

// Op is one recorded draw instruction.
type Op struct {
	Kind   OpKind
	Rect   RectF
	From   Vec
	To     Vec
	Radius float64
	Start  float64
	End    float64
	Text   string
	Stroke Stroke
	Fill   Fill
	Font   Font
}

// DrawList is the ordered set of draw instructions produced by one tick.
// It is immutable once returned from a tick.
type DrawList []Op

// Clear appends a clear of r.
func (l *DrawList) Clear(r RectF) {
	*l = append(*l, Op{Kind: OpClear, Rect: r})
}

// Line appends a stroked segment.
func (l *DrawList) Line(from, to Vec, s Stroke) {
	*l = append(*l, Op{Kind: OpLine, From: from, To: to, Stroke: s})
}

// StrokeRect appends a rectangle outline.
func (l *DrawList) StrokeRect(r RectF, s Stroke) {
	*l = append(*l, Op{Kind: OpStrokeRect, Rect: r, Stroke: s})
}

// FillRect appends a filled rectangle.
func (l *DrawList) FillRect(r RectF, f Fill) {
	*l = append(*l, Op{Kind: OpFillRect, Rect: r, Fill: f})
}

// RoundedRect appends a filled rectangle with rounded corners.
func (l *DrawList) RoundedRect(r RectF, radius float64, f Fill) {
	*l = append(*l, Op{Kind: OpRoundedRect, Rect: r, Radius: radius, Fill: f})
}

// Arc appends a filled arc from start to end radians.
func (l *DrawList) Arc(center Vec, radius, start, end float64, f Fill) {
	*l = append(*l, Op{Kind: OpArc, From: center, Radius: radius, Start: start, End: end, Fill: f})
}

// Text appends a label anchored at at.
func (l *DrawList) Text(text string, at Vec, f Font) {
	*l = append(*l, Op{Kind: OpText, Text: text, From: at, Font: f})
}

// Count returns how many ops of the given kind the list holds.
func (l DrawList) Count(kind OpKind) int {
	n := 0
	for _, op := range l {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Replay issues every op in order onto the surface. A nil surface is a no-op.
func (l DrawList) Replay(s Surface) {
	if s == nil {
		return
	}
	for _, op := range l {
		switch op.Kind {
		case OpClear:
			s.ClearRect(op.Rect)
		case OpLine:
			s.StrokeLine(op.From, op.To, op.Stroke)
		case OpStrokeRect:
			s.StrokeRect(op.Rect, op.Stroke)
		case OpFillRect:
			s.FillRect(op.Rect, op.Fill)
		case OpRoundedRect:
			s.FillRoundedRect(op.Rect, op.Radius, op.Fill)
		case OpArc:
			s.FillArc(op.From, op.Radius, op.Start, op.End, op.Fill)
		case OpText:
			s.FillText(op.Text, op.From, op.Font)
		}
	}
}
