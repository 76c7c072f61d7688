package vecpath

import (
	"iter"

	"honnef.co/go/curve"
)

// Events returns a lazy iterator over the path's events, replaying the
// verb buffer against the point buffer in order. Each for-range loop
// obtains a fresh pass over the path; breaking out of the loop abandons
// the iteration with no effect on the path. The iterator never mutates
// the path, so any number of iterations may run concurrently.
func (p *Path) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		pi := 0
		var first, cur curve.Point
		for _, v := range p.verbs {
			switch v {
			case VerbBegin:
				first = p.points[pi]
				cur = first
				pi++
				if !yield(BeginEvent(first)) {
					return
				}
			case VerbLineTo:
				to := p.points[pi]
				pi++
				if !yield(LineEvent(cur, to)) {
					return
				}
				cur = to
			case VerbQuadTo:
				ctrl, to := p.points[pi], p.points[pi+1]
				pi += 2
				if !yield(QuadraticEvent(cur, ctrl, to)) {
					return
				}
				cur = to
			case VerbCubicTo:
				ctrl1, ctrl2, to := p.points[pi], p.points[pi+1], p.points[pi+2]
				pi += 3
				if !yield(CubicEvent(cur, ctrl1, ctrl2, to)) {
					return
				}
				cur = to
			case VerbClose:
				if !yield(EndEvent(cur, first, true)) {
					return
				}
				cur = first
			case VerbEnd:
				if !yield(EndEvent(cur, first, false)) {
					return
				}
			}
		}
	}
}

// Flattened returns a lazy iterator over the path's events with every
// curve expanded into line events that deviate from the true curve by at
// most tolerance. Begin, Line and End events pass through unchanged, so
// the result is consumable by tessellators that only understand straight
// edges.
func (p *Path) Flattened(tolerance float64) iter.Seq[Event] {
	return Flatten(p.Events(), tolerance)
}

// Flatten adapts an arbitrary event sequence, expanding Quadratic and
// Cubic events into runs of Line events within tolerance. The subdivision
// is performed by the geometry library's adaptive flattening; all other
// events pass through unchanged.
func Flatten(events iter.Seq[Event], tolerance float64) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for ev := range events {
			switch ev.Kind {
			case EventQuadratic:
				q := curve.QuadBez{P0: ev.From, P1: ev.Ctrl1, P2: ev.To}
				if !flattenShape(q, ev.From, tolerance, yield) {
					return
				}
			case EventCubic:
				c := curve.CubicBez{P0: ev.From, P1: ev.Ctrl1, P2: ev.Ctrl2, P3: ev.To}
				if !flattenShape(c, ev.From, tolerance, yield) {
					return
				}
			default:
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// flattenShape runs adaptive flattening over a single curve and re-emits
// the resulting polyline as chained line events starting at from. The
// flattening's final vertex is the exact curve endpoint, so chaining with
// the surrounding events is preserved.
func flattenShape(shape curve.Shape, from curve.Point, tolerance float64, yield func(Event) bool) bool {
	cur := from
	for el := range curve.Flatten(shape.PathElements(tolerance), tolerance) {
		if el.Kind != curve.LineToKind {
			// The leading MoveTo restates the start point.
			continue
		}
		if !yield(LineEvent(cur, el.P0)) {
			return false
		}
		cur = el.P0
	}
	return true
}
