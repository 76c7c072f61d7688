package vecpath

import (
	"math"
	"testing"

	"honnef.co/go/curve"
)

func TestRectangle(t *testing.T) {
	b := NewBuilder()
	b.Rectangle(1, 2, 3, 4)
	p := b.Build()

	events := collect(p)
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5", len(events))
	}
	if events[0].At() != curve.Pt(1, 2) {
		t.Errorf("starts at %v, want (1,2)", events[0].At())
	}
	last := events[len(events)-1]
	if !last.Close {
		t.Error("rectangle subpath is not closed")
	}
	box := p.ControlBox()
	if box != curve.NewRectFromPoints(curve.Pt(1, 2), curve.Pt(4, 6)) {
		t.Errorf("ControlBox() = %v", box)
	}
}

func TestCircleOnCircumference(t *testing.T) {
	b := NewBuilder()
	b.Circle(2, 3, 5)
	p := b.Build()

	// Flattened vertices stay within the tolerance of the true circle.
	const tol = 0.01
	for ev := range p.Flattened(tol) {
		if ev.Kind != EventLine {
			continue
		}
		d := math.Hypot(ev.To.X-2, ev.To.Y-3)
		// Cubic segments undershoot the arc slightly on top of the
		// flattening error.
		if math.Abs(d-5) > tol+5*1e-3 {
			t.Errorf("vertex %v at distance %g from center, want 5", ev.To, d)
		}
	}

	events := collect(p)
	if !events[len(events)-1].Close {
		t.Error("circle subpath is not closed")
	}
}

func TestEllipseExtremes(t *testing.T) {
	b := NewBuilder()
	b.Ellipse(0, 0, 4, 2)
	p := b.Build()

	box := p.ControlBox()
	want := curve.NewRectFromPoints(curve.Pt(-4, -2), curve.Pt(4, 2))
	if box != want {
		t.Errorf("ControlBox() = %v, want %v", box, want)
	}
}

func TestRoundedRectangleClamping(t *testing.T) {
	// A radius larger than half the short side clamps to a capsule.
	b := NewBuilder()
	b.RoundedRectangle(0, 0, 10, 4, 100)
	p := b.Build()

	box := p.ControlBox()
	want := curve.NewRectFromPoints(curve.Pt(0, 0), curve.Pt(10, 4))
	if box != want {
		t.Errorf("ControlBox() = %v, want %v", box, want)
	}

	// Zero radius degenerates to a plain rectangle.
	b = NewBuilder()
	b.RoundedRectangle(0, 0, 10, 4, 0)
	for _, v := range b.Build().Verbs() {
		if v == VerbCubicTo {
			t.Fatal("zero-radius rounded rectangle contains cubics")
		}
	}
}

func TestPolygon(t *testing.T) {
	b := NewBuilder()
	b.Polygon(0, 0, 1, 6)
	p := b.Build()

	// Begin plus five lines plus close.
	if p.VerbCount() != 7 {
		t.Errorf("VerbCount() = %d, want 7", p.VerbCount())
	}
	events := collect(p)
	if got := events[0].At(); math.Abs(got.X) > 1e-15 || math.Abs(got.Y+1) > 1e-15 {
		t.Errorf("polygon starts at %v, want (0,-1)", got)
	}

	b = NewBuilder()
	b.Polygon(0, 0, 1, 2)
	if !b.Build().IsEmpty() {
		t.Error("2-sided polygon added verbs")
	}
}

func TestStar(t *testing.T) {
	b := NewBuilder()
	b.Star(0, 0, 2, 1, 5)
	p := b.Build()

	// Begin plus nine lines plus close.
	if p.VerbCount() != 11 {
		t.Errorf("VerbCount() = %d, want 11", p.VerbCount())
	}
	for ev := range p.Events() {
		if ev.Kind != EventLine {
			continue
		}
		d := math.Hypot(ev.To.X, ev.To.Y)
		if math.Abs(d-2) > 1e-12 && math.Abs(d-1) > 1e-12 {
			t.Errorf("star vertex %v at distance %g, want 1 or 2", ev.To, d)
		}
	}
}
