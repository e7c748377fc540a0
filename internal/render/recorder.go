package render

import (
	"geowidgets/internal/vector"
	"geowidgets/pkg/geometry"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpCircle OpKind = iota
	OpRect
	OpLine
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpCircle:
		return "circle"
	case OpRect:
		return "rect"
	case OpLine:
		return "line"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call with the transform that was active.
type Op struct {
	Kind      OpKind
	Transform geometry.AffineTransform
	Style     Style

	Center geometry.Point2D // circle
	Radius float64          // circle
	Rect   geometry.Rect    // rect
	From   geometry.Point2D // line
	To     geometry.Point2D // line
	Image  *vector.Image    // image
}

// Recorder is a Canvas that keeps the calls made on it instead of drawing.
type Recorder struct {
	Ops []Op

	current geometry.AffineTransform
	stack   []geometry.AffineTransform
}

// NewRecorder returns an empty recorder with an identity transform.
func NewRecorder() *Recorder {
	return &Recorder{current: geometry.Identity()}
}

func (r *Recorder) Push() { r.stack = append(r.stack, r.current) }

func (r *Recorder) Pop() {
	if len(r.stack) == 0 {
		return
	}
	r.current = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Transform(t geometry.AffineTransform) {
	r.current = r.current.Compose(t)
}

func (r *Recorder) Circle(center geometry.Point2D, radius float64, style Style) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Transform: r.current, Style: style, Center: center, Radius: radius})
}

func (r *Recorder) Rect(rect geometry.Rect, style Style) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Transform: r.current, Style: style, Rect: rect})
}

func (r *Recorder) Line(from, to geometry.Point2D, style Style) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Transform: r.current, Style: style, From: from, To: to})
}

func (r *Recorder) Image(img *vector.Image) {
	if img == nil {
		return
	}
	r.Ops = append(r.Ops, Op{Kind: OpImage, Transform: r.current, Image: img})
}

// Filter returns the recorded ops of one kind, in call order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops all recorded ops and restores the identity transform.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.stack = r.stack[:0]
	r.current = geometry.Identity()
}
