package vecpath

import (
	"math"

	"honnef.co/go/curve"
)

// Control point distance for approximating a quarter circle with one
// cubic Bezier segment: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// Rectangle adds a closed rectangle subpath.
func (b *Builder) Rectangle(x, y, w, h float64) {
	b.MoveTo(curve.Pt(x, y))
	b.LineTo(curve.Pt(x+w, y))
	b.LineTo(curve.Pt(x+w, y+h))
	b.LineTo(curve.Pt(x, y+h))
	b.Close()
}

// RoundedRectangle adds a closed rectangle subpath with rounded corners.
// The radius is clamped to half the smaller dimension.
func (b *Builder) RoundedRectangle(x, y, w, h, r float64) {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		b.Rectangle(x, y, w, h)
		return
	}
	k := kappa * r

	b.MoveTo(curve.Pt(x+r, y))
	b.LineTo(curve.Pt(x+w-r, y))
	b.CubicTo(curve.Pt(x+w-r+k, y), curve.Pt(x+w, y+r-k), curve.Pt(x+w, y+r))
	b.LineTo(curve.Pt(x+w, y+h-r))
	b.CubicTo(curve.Pt(x+w, y+h-r+k), curve.Pt(x+w-r+k, y+h), curve.Pt(x+w-r, y+h))
	b.LineTo(curve.Pt(x+r, y+h))
	b.CubicTo(curve.Pt(x+r-k, y+h), curve.Pt(x, y+h-r+k), curve.Pt(x, y+h-r))
	b.LineTo(curve.Pt(x, y+r))
	b.CubicTo(curve.Pt(x, y+r-k), curve.Pt(x+r-k, y), curve.Pt(x+r, y))
	b.Close()
}

// Circle adds a closed circle subpath built from four cubic Bezier
// segments.
func (b *Builder) Circle(cx, cy, r float64) {
	b.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed ellipse subpath built from four cubic Bezier
// segments.
func (b *Builder) Ellipse(cx, cy, rx, ry float64) {
	kx := kappa * rx
	ky := kappa * ry

	b.MoveTo(curve.Pt(cx+rx, cy))
	b.CubicTo(curve.Pt(cx+rx, cy+ky), curve.Pt(cx+kx, cy+ry), curve.Pt(cx, cy+ry))
	b.CubicTo(curve.Pt(cx-kx, cy+ry), curve.Pt(cx-rx, cy+ky), curve.Pt(cx-rx, cy))
	b.CubicTo(curve.Pt(cx-rx, cy-ky), curve.Pt(cx-kx, cy-ry), curve.Pt(cx, cy-ry))
	b.CubicTo(curve.Pt(cx+kx, cy-ry), curve.Pt(cx+rx, cy-ky), curve.Pt(cx+rx, cy))
	b.Close()
}

// Polygon adds a closed regular polygon subpath with the given number of
// sides, starting at the top. Fewer than 3 sides adds nothing.
func (b *Builder) Polygon(cx, cy, radius float64, sides int) {
	if sides < 3 {
		return
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		pt := curve.Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		if i == 0 {
			b.MoveTo(pt)
		} else {
			b.LineTo(pt)
		}
	}
	b.Close()
}

// Star adds a closed star subpath alternating between the outer and inner
// radius. Fewer than 3 points adds nothing.
func (b *Builder) Star(cx, cy, outerRadius, innerRadius float64, points int) {
	if points < 3 {
		return
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		pt := curve.Pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if i == 0 {
			b.MoveTo(pt)
		} else {
			b.LineTo(pt)
		}
	}
	b.Close()
}
