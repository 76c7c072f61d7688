package vecpath

import (
	"errors"

	"honnef.co/go/curve"
)

// ErrInvalidState reports an edge-drawing operation attempted while no
// subpath is open: before the first MoveTo, or after a Close or End with no
// subsequent MoveTo.
var ErrInvalidState = errors.New("vecpath: no subpath in progress")

// PathState is the construction state machine consulted by [Builder].
//
// It tracks where the pen is, where the active subpath started, and the
// trailing control point of the most recent curve (used to resolve smooth
// continuations). It is owned exclusively by one builder; it is never
// shared or ambient state.
//
// The machine has two states: no subpath (initial, and again after End),
// and subpath open (after Begin). Edge transitions are only valid while a
// subpath is open and return [ErrInvalidState] otherwise, mutating nothing.
type PathState struct {
	current  curve.Point
	first    curve.Point
	lastCtrl curve.Point
	hasCtrl  bool
	open     bool
}

// SubpathOpen reports whether a subpath is currently open.
func (s *PathState) SubpathOpen() bool {
	return s.open
}

// Current returns the pen position. Only meaningful while a subpath is
// open.
func (s *PathState) Current() curve.Point {
	return s.current
}

// First returns the point the active subpath started at.
func (s *PathState) First() curve.Point {
	return s.first
}

// Begin opens a new subpath at the given point. The caller must have
// terminated any previously open subpath with End first.
func (s *PathState) Begin(at curve.Point) {
	s.current = at
	s.first = at
	s.hasCtrl = false
	s.open = true
}

// Line records a straight edge to the given point.
func (s *PathState) Line(to curve.Point) error {
	if !s.open {
		return ErrInvalidState
	}
	s.current = to
	s.hasCtrl = false
	return nil
}

// Quadratic records a quadratic Bezier edge, remembering its control point
// for smooth continuation.
func (s *PathState) Quadratic(ctrl, to curve.Point) error {
	if !s.open {
		return ErrInvalidState
	}
	s.current = to
	s.lastCtrl = ctrl
	s.hasCtrl = true
	return nil
}

// Cubic records a cubic Bezier edge, remembering its trailing control
// point for smooth continuation.
func (s *PathState) Cubic(ctrl1, ctrl2, to curve.Point) error {
	if !s.open {
		return ErrInvalidState
	}
	s.current = to
	s.lastCtrl = ctrl2
	s.hasCtrl = true
	return nil
}

// ReflectedCtrl returns the implied leading control point for a smooth
// curve continuation: the reflection of the previous trailing control
// point about the pen position. When the previous command left no control
// point, it coincides with the pen position.
func (s *PathState) ReflectedCtrl() curve.Point {
	if !s.hasCtrl {
		return s.current
	}
	return s.current.Translate(s.current.Sub(s.lastCtrl))
}

// End terminates the open subpath and returns to the no-subpath state.
// It is the caller's responsibility to only call End while a subpath is
// open.
func (s *PathState) End(close bool) {
	if close {
		s.current = s.first
	}
	s.hasCtrl = false
	s.open = false
}
