package counter

import (
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point represents an x,y coordinate in image pixel space
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec returns the point as a gonum r2 vector for geometry calculations
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// ImagePoint rounds the point to the nearest integer pixel
func (p Point) ImagePoint() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// String returns the point formatted as (x,y)
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Region is the ordered list of points a counting boundary is built from.
// Zero points disables counting, two points define a line segment and three
// or more points define a closed polygon.
type Region []Point

// ImagePoints converts the region to integer pixel points for drawing
func (r Region) ImagePoints() []image.Point {
	pts := make([]image.Point, 0, len(r))

	for _, p := range r {
		pts = append(pts, p.ImagePoint())
	}

	return pts
}

// clone returns a copy of the region so later edits by the caller do not
// leak into an initialised boundary
func (r Region) clone() Region {
	if r == nil {
		return nil
	}

	out := make(Region, len(r))
	copy(out, r)
	return out
}
