// Package raster bridges vecpath paths to the golang.org/x/image/vector
// rasterizer. It is the reference consumer of the flattened event stream:
// everything it feeds the rasterizer is a straight edge.
package raster

import (
	"image"

	"golang.org/x/image/vector"

	"github.com/gogpu/vecpath"
)

// Draw feeds the path's events, flattened within tolerance, into the
// rasterizer. Subpaths left open by the path are closed by the rasterizer,
// as fill semantics require.
func Draw(z *vector.Rasterizer, p *vecpath.Path, tolerance float64) {
	for ev := range p.Flattened(tolerance) {
		switch ev.Kind {
		case vecpath.EventBegin:
			at := ev.At()
			z.MoveTo(float32(at.X), float32(at.Y))
		case vecpath.EventLine:
			z.LineTo(float32(ev.To.X), float32(ev.To.Y))
		case vecpath.EventEnd:
			z.ClosePath()
		}
	}
}

// Alpha rasterizes the filled path into a new alpha mask of the given
// size.
func Alpha(p *vecpath.Path, width, height int, tolerance float64) *image.Alpha {
	z := vector.NewRasterizer(width, height)
	Draw(z, p, tolerance)
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
