package counter

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Direction is the direction an object crossed the boundary in
type Direction int

const (
	// In is motion towards increasing x for vertical boundaries, or
	// increasing y for horizontal ones
	In Direction = 0
	// Out is any other motion
	Out Direction = 1
)

// String returns the label used for the direction in count output
func (d Direction) String() string {
	if d == In {
		return "IN"
	}
	return "OUT"
}

// Detect decides whether the movement of a track from prev to curr crosses
// the boundary and in which direction.  A nil prev (first sighting of a
// track) or a disabled boundary never crosses.  Detect has no side effects,
// whether the track was already counted is the caller's concern.
func Detect(prev *Point, curr Point, b *Boundary) (Direction, bool) {

	if prev == nil || !b.Enabled() {
		return Out, false
	}

	switch b.kind {
	case KindLine:
		if !segmentsIntersect(b.points[0], b.points[1], *prev, curr) {
			return Out, false
		}

	case KindPolygon:
		// only the current centroid is tested, prev is used for direction
		if !polygonContains(b.points, curr) {
			return Out, false
		}
	}

	return direction(*prev, curr, b.Vertical()), true
}

// direction applies the dominant axis rule to the motion of a track
func direction(prev, curr Point, vertical bool) Direction {

	if vertical {
		if curr.X > prev.X {
			return In
		}
		return Out
	}

	if curr.Y > prev.Y {
		return In
	}
	return Out
}

// orientation returns the sign of the turn a->b->c, positive for counter
// clockwise, negative for clockwise and zero when collinear
func orientation(a, b, c Point) float64 {
	return r2.Cross(r2.Sub(b.Vec(), a.Vec()), r2.Sub(c.Vec(), a.Vec()))
}

// onSegment reports whether p, known to be collinear with a and b, lies
// within the bounding box of segment ab
func onSegment(a, b, p Point) bool {
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// segmentsIntersect reports whether segment p1p2 and segment p3p4 share at
// least one point, touching end points and collinear overlap included
func segmentsIntersect(p1, p2, p3, p4 Point) bool {

	d1 := orientation(p3, p4, p1)
	d2 := orientation(p3, p4, p2)
	d3 := orientation(p1, p2, p3)
	d4 := orientation(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}

	return false
}

// polygonContains reports whether pt lies strictly inside the polygon.
// Points on an edge are outside.  Results for self intersecting polygons
// are undefined.
func polygonContains(poly Region, pt Point) bool {

	n := len(poly)
	if n < 3 {
		return false
	}

	// exclude the boundary itself
	j := n - 1
	for i := 0; i < n; i++ {
		if orientation(poly[j], poly[i], pt) == 0 && onSegment(poly[j], poly[i], pt) {
			return false
		}
		j = i
	}

	// ray casting
	inside := false
	j = n - 1

	for i := 0; i < n; i++ {
		xi, yi := poly[i].X, poly[i].Y
		xj, yj := poly[j].X, poly[j].Y

		if ((yi > pt.Y) != (yj > pt.Y)) &&
			(pt.X < (xj-xi)*(pt.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}
