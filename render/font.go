package render

import (
	"image/color"

	"gocv.io/x/gocv"
)

type Alignment int

const (
	Left   Alignment = 1
	Center Alignment = 2
	Right  Alignment = 3
)

// Font defines the parameters for rendering text on an image using GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Padding to place around text
	LeftPad   int
	RightPad  int
	TopPad    int
	BottomPad int
	// Alignment of the text label to the bounding box
	Alignment Alignment
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		LeftPad:   4,
		RightPad:  4,
		TopPad:    4,
		BottomPad: 6,
		Alignment: Left,
	}
}

// ScaledFont returns the default font sized for the given line width, so
// labels stay legible on high resolution video drawn with thick lines
func ScaledFont(lineWidth int) Font {

	f := DefaultFont()

	if lineWidth <= 1 {
		return f
	}

	f.Scale = 0.25 * float64(lineWidth)
	f.Thickness = lineWidth / 2
	f.LeftPad *= lineWidth / 2
	f.RightPad *= lineWidth / 2
	f.TopPad *= lineWidth / 2
	f.BottomPad *= lineWidth / 2

	return f
}

// textSize measures the rendered size of the text in the font
func (f Font) textSize(text string) (int, int) {
	size := gocv.GetTextSize(text, f.Face, f.Scale, f.Thickness)
	return size.X, size.Y
}
