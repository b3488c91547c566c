// Package shape turns draw commands into polygons and text anchors for
// surfaces that only rasterize triangles and glyph runs.
package shape

import (
	"math"

	"quiz-presenter/internal/domain"
)

// EllipseSegments is the polygon resolution used for ellipses.
const EllipseSegments = 32

type Point struct {
	X, Y float64
}

// Ellipse returns the outline of the ellipse inscribed in a w x h box
// centred on (cx, cy).
func Ellipse(cx, cy, w, h float64, segments int) []Point {
	if segments < 3 {
		segments = 3
	}
	rx, ry := w/2, h/2
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}

// Star returns a star outline alternating outer and inner radii, starting
// with an outer point straight up.
func Star(cx, cy, outer, inner float64, points int) []Point {
	if points < 2 {
		points = 5
	}
	pts := make([]Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(points)
		pts = append(pts, Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// Outline returns the polygon for an ellipse or star command, or nil.
func Outline(cmd domain.DrawCommand) []Point {
	switch cmd.Kind {
	case domain.DrawEllipse:
		return Ellipse(cmd.X, cmd.Y, cmd.W, cmd.H, EllipseSegments)
	case domain.DrawStar:
		return Star(cmd.X, cmd.Y, cmd.Radius, cmd.Inner, cmd.Points)
	}
	return nil
}

// Fan returns triangle indices for a polygon whose vertices follow a centre
// vertex at index 0. Both ellipses and stars are star-shaped around their
// centre, so the fan covers them exactly.
func Fan(n int) []uint16 {
	idx := make([]uint16, 0, n*3)
	for i := 0; i < n; i++ {
		idx = append(idx, 0, uint16(i+1), uint16((i+1)%n+1))
	}
	return idx
}

// AlignX returns the left edge of a run of text of the given width anchored
// at x.
func AlignX(align domain.Align, x, width float64) float64 {
	switch align {
	case domain.AlignCenter:
		return x - width/2
	case domain.AlignRight:
		return x - width
	}
	return x
}
