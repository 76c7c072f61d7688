// Package vecpath provides data structures to build and iterate 2D vector
// paths.
//
// # Overview
//
// vecpath sits between code that describes shapes and a downstream
// tessellator or rasterizer that only understands straight edges. A path is
// built incrementally through a [Builder], which validates the command
// sequence (no edge before a subpath is started, every subpath explicitly
// closed or ended) and stores the result in a compact [Path]: a verb stream
// paired with a point stream. A finished Path is immutable and can be
// replayed any number of times, by any number of goroutines, as a lazy
// sequence of [Event] values, either exactly as built or with curves
// flattened into line segments within a caller-supplied tolerance.
//
// All curve math (Bezier evaluation, adaptive flattening, arc-to-cubic
// conversion) is delegated to honnef.co/go/curve; vecpath owns the command
// vocabulary, the construction state machine and the storage, not the
// numerics.
//
// # Quick start
//
//	b := vecpath.NewBuilder()
//	b.MoveTo(curve.Pt(0, 0))
//	b.LineTo(curve.Pt(1, 2))
//	b.LineTo(curve.Pt(2, 0))
//	b.Close()
//	p := b.Build()
//
//	for ev := range p.Events() {
//	    fmt.Println(ev)
//	}
//
//	// Curves expanded into line segments, at most 0.01 from the true curve:
//	for ev := range p.Flattened(0.01) {
//	    // ev.Kind is EventBegin, EventLine or EventEnd only
//	}
//
// # Coordinate system
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
package vecpath
