package counter

import (
	"image"
	"math"
)

// Box is an object bounding box in Tlbr (top-left x, top-left y,
// bottom-right x, bottom-right y) format
type Box [4]float64

// NewBox creates a Box from the top-left and bottom-right coordinates
func NewBox(x1, y1, x2, y2 float64) Box {
	return Box{x1, y1, x2, y2}
}

// BoxFromTlwh creates a Box from top-left coordinates plus width and height
func BoxFromTlwh(x, y, width, height float64) Box {
	return Box{x, y, x + width, y + height}
}

// TLX returns the top-left x coordinate of the box
func (b Box) TLX() float64 {
	return b[0]
}

// TLY returns the top-left y coordinate of the box
func (b Box) TLY() float64 {
	return b[1]
}

// BRX returns the bottom-right x coordinate of the box
func (b Box) BRX() float64 {
	return b[2]
}

// BRY returns the bottom-right y coordinate of the box
func (b Box) BRY() float64 {
	return b[3]
}

// Width returns the width of the box
func (b Box) Width() float64 {
	return b.BRX() - b.TLX()
}

// Height returns the height of the box
func (b Box) Height() float64 {
	return b.BRY() - b.TLY()
}

// Center returns the centroid of the box, the position recorded in a
// track's history
func (b Box) Center() Point {
	return Point{
		X: (b.TLX() + b.BRX()) / 2,
		Y: (b.TLY() + b.BRY()) / 2,
	}
}

// Rect converts the box to an integer image.Rectangle for drawing
func (b Box) Rect() image.Rectangle {
	return image.Rect(
		int(math.Round(b.TLX())), int(math.Round(b.TLY())),
		int(math.Round(b.BRX())), int(math.Round(b.BRY())),
	)
}
