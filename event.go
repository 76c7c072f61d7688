package vecpath

import (
	"fmt"

	"honnef.co/go/curve"
)

// EventKind identifies which path command an [Event] carries.
type EventKind uint8

const (
	// EventBegin starts a new subpath.
	EventBegin EventKind = iota
	// EventLine is a straight edge.
	EventLine
	// EventQuadratic is a quadratic Bezier edge.
	EventQuadratic
	// EventCubic is a cubic Bezier edge.
	EventCubic
	// EventEnd terminates the current subpath.
	EventEnd
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBegin:
		return "Begin"
	case EventLine:
		return "Line"
	case EventQuadratic:
		return "Quadratic"
	case EventCubic:
		return "Cubic"
	case EventEnd:
		return "End"
	default:
		return unknownStr
	}
}

// Event is the atomic unit of path description, exchanged between the
// builder, the storage and the iterators. It is a tagged struct: Kind
// selects the variant and determines which fields are meaningful.
//
//   - Begin: From and To both hold the starting point of the subpath.
//   - Line: the edge From -> To.
//   - Quadratic: the edge From -> To with control point Ctrl1.
//   - Cubic: the edge From -> To with control points Ctrl1 and Ctrl2.
//   - End: From is the last point of the subpath, To is its first point,
//     and Close reports whether the closing edge From -> To must be
//     honored by consumers.
//
// Within one subpath, events chain: the To of each event equals the From
// of the next.
type Event struct {
	Kind  EventKind
	From  curve.Point
	Ctrl1 curve.Point
	Ctrl2 curve.Point
	To    curve.Point
	Close bool
}

// BeginEvent returns an event starting a subpath at the given point.
func BeginEvent(at curve.Point) Event {
	return Event{Kind: EventBegin, From: at, To: at}
}

// LineEvent returns a straight edge event.
func LineEvent(from, to curve.Point) Event {
	return Event{Kind: EventLine, From: from, To: to}
}

// QuadraticEvent returns a quadratic Bezier edge event.
func QuadraticEvent(from, ctrl, to curve.Point) Event {
	return Event{Kind: EventQuadratic, From: from, Ctrl1: ctrl, To: to}
}

// CubicEvent returns a cubic Bezier edge event.
func CubicEvent(from, ctrl1, ctrl2, to curve.Point) Event {
	return Event{Kind: EventCubic, From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
}

// EndEvent returns an event terminating a subpath. last is the final point
// reached, first the point the subpath started at. When close is true the
// edge last -> first is part of the shape.
func EndEvent(last, first curve.Point, close bool) Event {
	return Event{Kind: EventEnd, From: last, To: first, Close: close}
}

// At returns the starting point of a Begin event.
func (e Event) At() curve.Point {
	return e.To
}

// First returns the first point of the subpath terminated by an End event.
func (e Event) First() curve.Point {
	return e.To
}

// Last returns the last point of the subpath terminated by an End event.
func (e Event) Last() curve.Point {
	return e.From
}

// String returns a human-readable form of the event.
func (e Event) String() string {
	switch e.Kind {
	case EventBegin:
		return fmt.Sprintf("Begin %v", e.To)
	case EventLine:
		return fmt.Sprintf("Line %v -> %v", e.From, e.To)
	case EventQuadratic:
		return fmt.Sprintf("Quadratic %v -> %v ctrl %v", e.From, e.To, e.Ctrl1)
	case EventCubic:
		return fmt.Sprintf("Cubic %v -> %v ctrl %v %v", e.From, e.To, e.Ctrl1, e.Ctrl2)
	case EventEnd:
		if e.Close {
			return fmt.Sprintf("End %v close -> %v", e.From, e.To)
		}
		return fmt.Sprintf("End %v", e.From)
	default:
		return unknownStr
	}
}
