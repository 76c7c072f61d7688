package vecpath

import (
	"math"

	"honnef.co/go/curve"
)

// arcApproxTolerance bounds the deviation of the cubic segments an arc is
// lowered to. The cubic approximation error is far below this for typical
// radii; the bound mostly controls how many segments large arcs split
// into.
const arcApproxTolerance = 0.1

// Builder is the mutable front end of path construction. It accepts
// drawing commands, consults a [PathState] for validity and defaulting,
// and appends canonical events into the verb and point buffers that become
// a [Path].
//
// Edge operations invoked while no subpath is open fail with
// [ErrInvalidState] and append nothing. The builder is the sole writer of
// the buffers it owns; it must not be shared between goroutines.
type Builder struct {
	state  PathState
	verbs  []Verb
	points []curve.Point
}

// NewBuilder creates an empty path builder.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16, 32)
}

// NewBuilderWithCapacity creates an empty path builder with preallocated
// buffer space for the given number of verbs and points.
func NewBuilderWithCapacity(verbs, points int) *Builder {
	return &Builder{
		verbs:  make([]Verb, 0, verbs),
		points: make([]curve.Point, 0, points),
	}
}

// CurrentPosition returns the pen position. Only meaningful while a
// subpath is open.
func (b *Builder) CurrentPosition() curve.Point {
	return b.state.Current()
}

// SubpathOpen reports whether a subpath is currently open.
func (b *Builder) SubpathOpen() bool {
	return b.state.SubpathOpen()
}

// reject records a failed edge operation and returns its error.
func (b *Builder) reject(op string, err error) error {
	logger().Debug("vecpath: rejected builder operation", "op", op, "err", err)
	return err
}

// MoveTo starts a new subpath at the given point. If a subpath is already
// open it is ended first, without a closing edge.
func (b *Builder) MoveTo(at curve.Point) {
	if b.state.SubpathOpen() {
		b.verbs = append(b.verbs, VerbEnd)
		b.state.End(false)
	}
	b.state.Begin(at)
	b.verbs = append(b.verbs, VerbBegin)
	b.points = append(b.points, at)
}

// LineTo draws a straight edge from the pen position to the given point.
func (b *Builder) LineTo(to curve.Point) error {
	if err := b.state.Line(to); err != nil {
		return b.reject("LineTo", err)
	}
	b.verbs = append(b.verbs, VerbLineTo)
	b.points = append(b.points, to)
	return nil
}

// QuadraticTo draws a quadratic Bezier edge from the pen position to the
// given point.
func (b *Builder) QuadraticTo(ctrl, to curve.Point) error {
	if err := b.state.Quadratic(ctrl, to); err != nil {
		return b.reject("QuadraticTo", err)
	}
	b.verbs = append(b.verbs, VerbQuadTo)
	b.points = append(b.points, ctrl, to)
	return nil
}

// CubicTo draws a cubic Bezier edge from the pen position to the given
// point.
func (b *Builder) CubicTo(ctrl1, ctrl2, to curve.Point) error {
	if err := b.state.Cubic(ctrl1, ctrl2, to); err != nil {
		return b.reject("CubicTo", err)
	}
	b.verbs = append(b.verbs, VerbCubicTo)
	b.points = append(b.points, ctrl1, ctrl2, to)
	return nil
}

// SmoothQuadraticTo draws a quadratic Bezier edge whose control point is
// the reflection of the previous curve's control point about the pen
// position. After a command with no trailing control point the control
// point coincides with the pen position.
func (b *Builder) SmoothQuadraticTo(to curve.Point) error {
	if !b.state.SubpathOpen() {
		return b.reject("SmoothQuadraticTo", ErrInvalidState)
	}
	return b.QuadraticTo(b.state.ReflectedCtrl(), to)
}

// SmoothCubicTo draws a cubic Bezier edge whose first control point is the
// reflection of the previous curve's trailing control point about the pen
// position.
func (b *Builder) SmoothCubicTo(ctrl2, to curve.Point) error {
	if !b.state.SubpathOpen() {
		return b.reject("SmoothCubicTo", ErrInvalidState)
	}
	return b.CubicTo(b.state.ReflectedCtrl(), ctrl2, to)
}

// HorizontalLineTo draws a horizontal edge to the given x coordinate.
func (b *Builder) HorizontalLineTo(x float64) error {
	if !b.state.SubpathOpen() {
		return b.reject("HorizontalLineTo", ErrInvalidState)
	}
	return b.LineTo(curve.Pt(x, b.state.Current().Y))
}

// VerticalLineTo draws a vertical edge to the given y coordinate.
func (b *Builder) VerticalLineTo(y float64) error {
	if !b.state.SubpathOpen() {
		return b.reject("VerticalLineTo", ErrInvalidState)
	}
	return b.LineTo(curve.Pt(b.state.Current().X, y))
}

// ArcTo draws an elliptical arc from the pen position to the given point,
// using the SVG endpoint parameterization: radii of the ellipse, rotation
// of its x axis in radians, and the large-arc and sweep flags selecting
// among the four candidate arcs.
//
// The arc is lowered to cubic Bezier segments; only line, quadratic,
// cubic, begin and end verbs are ever stored.
func (b *Builder) ArcTo(radii curve.Vec2, xRotation float64, largeArc, sweep bool, to curve.Point) error {
	if !b.state.SubpathOpen() {
		return b.reject("ArcTo", ErrInvalidState)
	}
	from := b.state.Current()
	if from == to {
		return nil
	}
	if radii.X == 0 || radii.Y == 0 {
		// Per the SVG spec, a degenerate ellipse collapses the arc to a
		// straight edge.
		return b.LineTo(to)
	}

	center, r, start, sweepAngle := arcToCenter(from, to, radii, xRotation, largeArc, sweep)
	arc := curve.Arc{
		Center:     center,
		Radii:      r,
		StartAngle: start,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}

	var cubics []curve.PathElement
	for el := range arc.PathElements(arcApproxTolerance) {
		if el.Kind == curve.CubicToKind {
			cubics = append(cubics, el)
		}
	}
	for i, el := range cubics {
		end := el.P2
		if i == len(cubics)-1 {
			// Snap the final segment onto the requested endpoint so that
			// event chaining stays exact.
			end = to
		}
		if err := b.CubicTo(el.P0, el.P1, end); err != nil {
			return err
		}
	}
	return nil
}

// Arc draws a center-parameterized elliptical arc: sweepAngle radians of
// the ellipse around center, starting at startAngle, with the radii
// rotated by xRotation. If no subpath is open, one is started at the arc's
// first point; otherwise a straight edge connects the pen position to it.
func (b *Builder) Arc(center curve.Point, radii curve.Vec2, startAngle, sweepAngle, xRotation float64) error {
	arc := curve.Arc{
		Center:     center,
		Radii:      radii,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}
	for el := range arc.PathElements(arcApproxTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			if b.state.SubpathOpen() {
				if err := b.LineTo(el.P0); err != nil {
					return err
				}
			} else {
				b.MoveTo(el.P0)
			}
		case curve.CubicToKind:
			if err := b.CubicTo(el.P0, el.P1, el.P2); err != nil {
				return err
			}
		}
	}
	return nil
}

// RelMoveTo starts a new subpath at the pen position displaced by v. On a
// fresh builder the pen position is the origin.
func (b *Builder) RelMoveTo(v curve.Vec2) {
	b.MoveTo(b.state.Current().Translate(v))
}

// RelLineTo draws a straight edge to the pen position displaced by v.
func (b *Builder) RelLineTo(v curve.Vec2) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelLineTo", ErrInvalidState)
	}
	return b.LineTo(b.state.Current().Translate(v))
}

// RelQuadraticTo draws a quadratic Bezier edge with control point and end
// point relative to the pen position.
func (b *Builder) RelQuadraticTo(ctrl, to curve.Vec2) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelQuadraticTo", ErrInvalidState)
	}
	cur := b.state.Current()
	return b.QuadraticTo(cur.Translate(ctrl), cur.Translate(to))
}

// RelCubicTo draws a cubic Bezier edge with control points and end point
// relative to the pen position.
func (b *Builder) RelCubicTo(ctrl1, ctrl2, to curve.Vec2) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelCubicTo", ErrInvalidState)
	}
	cur := b.state.Current()
	return b.CubicTo(cur.Translate(ctrl1), cur.Translate(ctrl2), cur.Translate(to))
}

// RelSmoothQuadraticTo is [Builder.SmoothQuadraticTo] with the end point
// relative to the pen position.
func (b *Builder) RelSmoothQuadraticTo(to curve.Vec2) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelSmoothQuadraticTo", ErrInvalidState)
	}
	return b.SmoothQuadraticTo(b.state.Current().Translate(to))
}

// RelSmoothCubicTo is [Builder.SmoothCubicTo] with the second control
// point and end point relative to the pen position.
func (b *Builder) RelSmoothCubicTo(ctrl2, to curve.Vec2) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelSmoothCubicTo", ErrInvalidState)
	}
	cur := b.state.Current()
	return b.SmoothCubicTo(cur.Translate(ctrl2), cur.Translate(to))
}

// RelHorizontalLineTo draws a horizontal edge of length dx.
func (b *Builder) RelHorizontalLineTo(dx float64) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelHorizontalLineTo", ErrInvalidState)
	}
	return b.HorizontalLineTo(b.state.Current().X + dx)
}

// RelVerticalLineTo draws a vertical edge of length dy.
func (b *Builder) RelVerticalLineTo(dy float64) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelVerticalLineTo", ErrInvalidState)
	}
	return b.VerticalLineTo(b.state.Current().Y + dy)
}

// RelArcTo is [Builder.ArcTo] with the end point relative to the pen
// position.
func (b *Builder) RelArcTo(radii curve.Vec2, xRotation float64, largeArc, sweep bool, to curve.Vec2) error {
	if !b.state.SubpathOpen() {
		return b.reject("RelArcTo", ErrInvalidState)
	}
	return b.ArcTo(radii, xRotation, largeArc, sweep, b.state.Current().Translate(to))
}

// Close terminates the open subpath with a closing edge back to its first
// point. Closing while no subpath is open is a harmless no-op.
func (b *Builder) Close() {
	if !b.state.SubpathOpen() {
		return
	}
	b.verbs = append(b.verbs, VerbClose)
	b.state.End(true)
}

// EndSubpath terminates the open subpath without a closing edge. Ending
// while no subpath is open is a harmless no-op.
func (b *Builder) EndSubpath() {
	if !b.state.SubpathOpen() {
		return
	}
	b.verbs = append(b.verbs, VerbEnd)
	b.state.End(false)
}

// Build finalizes construction and returns the immutable path. A still
// open subpath is ended without a closing edge. Build consumes the
// builder; it must not be used afterwards.
func (b *Builder) Build() *Path {
	b.EndSubpath()
	p := &Path{verbs: b.verbs, points: b.points}
	b.verbs = nil
	b.points = nil
	return p
}

// arcToCenter converts the SVG endpoint parameterization of an elliptical
// arc to center parameterization, returning the center, the (possibly
// scaled up) radii, the start angle and the signed sweep angle.
//
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes.
func arcToCenter(from, to curve.Point, radii curve.Vec2, xRotation float64, largeArc, sweep bool) (curve.Point, curve.Vec2, float64, float64) {
	rx := math.Abs(radii.X)
	ry := math.Abs(radii.Y)
	sinPhi, cosPhi := math.Sincos(xRotation)

	hdx := (from.X - to.X) / 2
	hdy := (from.Y - to.Y) / 2
	x1p := cosPhi*hdx + sinPhi*hdy
	y1p := -sinPhi*hdx + cosPhi*hdy

	// Scale the radii up when the endpoints cannot be reached.
	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0 {
		// Rounding noise.
		sq = 0
	}
	coef := math.Sqrt(sq)
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	start := math.Atan2(uy, ux)
	delta := math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return curve.Pt(cx, cy), curve.Vec2{X: rx, Y: ry}, start, delta
}
