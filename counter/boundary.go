package counter

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
	"gonum.org/v1/gonum/floats"
)

// Kind is the geometric type of a counting boundary
type Kind int

const (
	// KindDisabled is a region with fewer than two points, counting is off
	KindDisabled Kind = 0
	// KindLine is a two point line segment
	KindLine Kind = 1
	// KindPolygon is a closed polygon of three or more points
	KindPolygon Kind = 2
)

// String returns the name of the boundary kind
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	default:
		return "disabled"
	}
}

// clipperScale is the fixed point scale used when handing float coordinates
// to clipper, which works on integers
const clipperScale = 1000.0

// Boundary is the normalised, immutable counting region
type Boundary struct {
	kind   Kind
	points Region
	// width and height are the extents of the boundary points, used to
	// decide which axis of motion determines crossing direction
	width  float64
	height float64
}

// NewBoundary builds a Boundary from the given region.  For polygons a non
// zero margin grows (positive) or shrinks (negative) the polygon by that
// many pixels, line segments ignore the margin.
func NewBoundary(region Region, margin float64) *Boundary {

	b := &Boundary{
		points: region.clone(),
	}

	switch {
	case len(b.points) == 2:
		b.kind = KindLine
	case len(b.points) > 2:
		b.kind = KindPolygon

		if margin != 0 {
			if grown := offsetPolygon(b.points, margin); len(grown) > 2 {
				b.points = grown
			}
		}
	default:
		b.kind = KindDisabled
	}

	b.width, b.height = extents(b.points)

	return b
}

// Kind returns the boundary type
func (b *Boundary) Kind() Kind {
	return b.kind
}

// Points returns a copy of the boundary points
func (b *Boundary) Points() Region {
	return b.points.clone()
}

// Enabled reports whether crossing checks are evaluated for this boundary
func (b *Boundary) Enabled() bool {
	return b != nil && b.kind != KindDisabled
}

// Width returns the horizontal extent of the boundary points
func (b *Boundary) Width() float64 {
	return b.width
}

// Height returns the vertical extent of the boundary points
func (b *Boundary) Height() float64 {
	return b.height
}

// Vertical reports whether the boundary is more vertical than horizontal,
// in which case horizontal motion decides the crossing direction.  A
// boundary with equal extents is treated as horizontal.
func (b *Boundary) Vertical() bool {
	return b.width < b.height
}

// extents returns max-min of the x and y coordinates over the points
func extents(pts Region) (float64, float64) {

	if len(pts) == 0 {
		return 0, 0
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))

	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return floats.Max(xs) - floats.Min(xs), floats.Max(ys) - floats.Min(ys)
}

// offsetPolygon grows or shrinks the polygon by delta pixels.  When the
// offset splits the polygon the largest resulting piece is returned, when it
// collapses the polygon nil is returned.
func offsetPolygon(pts Region, delta float64) Region {

	var path clipper.Path

	for _, p := range pts {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(math.Round(p.X * clipperScale)),
			Y: clipper.CInt(math.Round(p.Y * clipperScale)),
		})
	}

	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtClosedPolygon)

	solution := co.Execute(delta * clipperScale)

	var best Region
	bestArea := 0.0

	for _, sol := range solution {
		var poly Region

		for _, pt := range sol {
			poly = append(poly, Point{
				X: float64(pt.X) / clipperScale,
				Y: float64(pt.Y) / clipperScale,
			})
		}

		if area := math.Abs(shoelace(poly)); len(poly) > 2 && area > bestArea {
			best = poly
			bestArea = area
		}
	}

	return best
}

// shoelace returns the signed area of the polygon
func shoelace(pts Region) float64 {

	area := 0.0
	j := len(pts) - 1

	for i := range pts {
		area += (pts[j].X + pts[i].X) * (pts[j].Y - pts[i].Y)
		j = i
	}

	return area / 2
}
