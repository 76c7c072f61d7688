package vecpath

import (
	"errors"
	"fmt"
	"strings"

	"honnef.co/go/curve"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Verb identifies which kind of segment a position in the verb buffer
// represents. Arcs are never stored; the builder lowers them to cubic
// verbs.
type Verb uint8

const (
	// VerbBegin starts a new subpath. Consumes the starting point.
	VerbBegin Verb = iota
	// VerbLineTo draws a line to the next point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve. Consumes the control
	// point and the end point.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve. Consumes two control points
	// and the end point.
	VerbCubicTo
	// VerbClose terminates the subpath with a closing edge back to its
	// first point.
	VerbClose
	// VerbEnd terminates the subpath without a closing edge.
	VerbEnd
)

// String returns a human-readable name for the verb.
func (v Verb) String() string {
	switch v {
	case VerbBegin:
		return "Begin"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	case VerbEnd:
		return "End"
	default:
		return unknownStr
	}
}

// PointCount returns the number of points this verb consumes.
func (v Verb) PointCount() int {
	switch v {
	case VerbBegin, VerbLineTo:
		return 1
	case VerbQuadTo:
		return 2
	case VerbCubicTo:
		return 3
	default:
		return 0
	}
}

// ErrIndexOutOfRange reports a point-buffer access beyond the stored
// length.
var ErrIndexOutOfRange = errors.New("vecpath: point index out of range")

// Path is an immutable sequence of drawing commands, stored as a verb
// stream and a parallel point stream. The separation keeps the buffers
// compact and lets any number of subpaths share one allocation.
//
// A Path is created through a [Builder] and never mutated afterwards; it
// may be read concurrently by any number of iterators.
type Path struct {
	verbs  []Verb
	points []curve.Point
}

// VerbCount returns the number of verbs in the path.
func (p *Path) VerbCount() int {
	return len(p.verbs)
}

// PointCount returns the number of points in the point stream.
func (p *Path) PointCount() int {
	return len(p.points)
}

// Verbs returns the verb stream. The returned slice is the path's own
// storage and must not be mutated.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the point stream. The returned slice is the path's own
// storage and must not be mutated.
func (p *Path) Points() []curve.Point {
	return p.points
}

// Point returns the point at the given index in the point stream, for
// consumers that need raw control-point inspection. Out-of-range access
// returns [ErrIndexOutOfRange].
func (p *Path) Point(i int) (curve.Point, error) {
	if i < 0 || i >= len(p.points) {
		return curve.Point{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.points))
	}
	return p.points[i], nil
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Equal reports whether two paths carry the same verb and point buffers.
// Points compare by exact floating-point equality.
func (p *Path) Equal(other *Path) bool {
	if len(p.verbs) != len(other.verbs) || len(p.points) != len(other.points) {
		return false
	}
	for i, v := range p.verbs {
		if other.verbs[i] != v {
			return false
		}
	}
	for i, pt := range p.points {
		if other.points[i] != pt {
			return false
		}
	}
	return true
}

// String returns the path in SVG path-data style: "M" for Begin, "L", "Q",
// "C" for edges and "Z" for a closing End. An End without a closing edge
// has no SVG verb and is rendered as "E".
func (p *Path) String() string {
	var sb strings.Builder
	pi := 0
	for _, v := range p.verbs {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch v {
		case VerbBegin:
			fmt.Fprintf(&sb, "M%g,%g", p.points[pi].X, p.points[pi].Y)
		case VerbLineTo:
			fmt.Fprintf(&sb, "L%g,%g", p.points[pi].X, p.points[pi].Y)
		case VerbQuadTo:
			fmt.Fprintf(&sb, "Q%g,%g %g,%g",
				p.points[pi].X, p.points[pi].Y,
				p.points[pi+1].X, p.points[pi+1].Y)
		case VerbCubicTo:
			fmt.Fprintf(&sb, "C%g,%g %g,%g %g,%g",
				p.points[pi].X, p.points[pi].Y,
				p.points[pi+1].X, p.points[pi+1].Y,
				p.points[pi+2].X, p.points[pi+2].Y)
		case VerbClose:
			sb.WriteByte('Z')
		case VerbEnd:
			sb.WriteByte('E')
		}
		pi += v.PointCount()
	}
	return sb.String()
}

// Append returns a new path containing the subpaths of p followed by the
// subpaths of other. Both inputs are left untouched.
func (p *Path) Append(other *Path) *Path {
	out := &Path{
		verbs:  make([]Verb, 0, len(p.verbs)+len(other.verbs)),
		points: make([]curve.Point, 0, len(p.points)+len(other.points)),
	}
	out.verbs = append(out.verbs, p.verbs...)
	out.verbs = append(out.verbs, other.verbs...)
	out.points = append(out.points, p.points...)
	out.points = append(out.points, other.points...)
	return out
}

// Transform returns a new path with every point mapped through the affine
// transformation.
func (p *Path) Transform(aff curve.Affine) *Path {
	out := &Path{
		verbs:  make([]Verb, len(p.verbs)),
		points: make([]curve.Point, len(p.points)),
	}
	copy(out.verbs, p.verbs)
	for i, pt := range p.points {
		out.points[i] = pt.Transform(aff)
	}
	return out
}

// ControlBox returns a rectangle that conservatively encloses the path,
// using control points directly rather than tight curve bounds.
func (p *Path) ControlBox() curve.Rect {
	var cbox curve.Rect
	for i, pt := range p.points {
		if i == 0 {
			cbox = curve.NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	return cbox
}

// Reversed returns a new path with the direction of every subpath
// reversed. This is useful for creating cut-out shapes.
func (p *Path) Reversed() *Path {
	b := NewBuilderWithCapacity(len(p.verbs), len(p.points))
	var edges []Event
	for ev := range p.Events() {
		switch ev.Kind {
		case EventBegin:
			edges = edges[:0]
		case EventEnd:
			b.MoveTo(ev.Last())
			for i := len(edges) - 1; i >= 0; i-- {
				e := edges[i]
				switch e.Kind {
				case EventLine:
					b.LineTo(e.From)
				case EventQuadratic:
					b.QuadraticTo(e.Ctrl1, e.From)
				case EventCubic:
					b.CubicTo(e.Ctrl2, e.Ctrl1, e.From)
				}
			}
			if ev.Close {
				b.Close()
			} else {
				b.EndSubpath()
			}
		default:
			edges = append(edges, ev)
		}
	}
	return b.Build()
}

// Contains reports whether the point is inside the path under the given
// fill rule. Curves are flattened within tolerance for the winding test;
// unclosed subpaths are treated as closed, as fill semantics require.
func (p *Path) Contains(pt curve.Point, rule FillRule, tolerance float64) bool {
	winding := 0
	for ev := range p.Flattened(tolerance) {
		switch ev.Kind {
		case EventLine:
			winding += windingSegment(ev.From, ev.To, pt)
		case EventEnd:
			if ev.From != ev.To {
				winding += windingSegment(ev.From, ev.To, pt)
			}
		}
	}
	return rule.AcceptsWinding(winding)
}

// windingSegment counts the crossing of a horizontal ray from pt to
// (+inf, pt.Y) by the segment a -> b: +1 for an upward crossing, -1 for a
// downward one.
func windingSegment(a, b, pt curve.Point) int {
	if a.Y <= pt.Y && b.Y > pt.Y && isLeft(a, b, pt) > 0 {
		return 1
	}
	if a.Y > pt.Y && b.Y <= pt.Y && isLeft(a, b, pt) < 0 {
		return -1
	}
	return 0
}

// isLeft is positive when pt lies left of the line a -> b, zero on the
// line, negative to the right.
func isLeft(a, b, pt curve.Point) float64 {
	return (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
}
