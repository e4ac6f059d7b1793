package render

import (
	"image/color"

	"github.com/swdee/go-objcount/counter"
	"gocv.io/x/gocv"
)

// TrailStyle defines the parameters used for rendering the trail style
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at LineColor
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// CircleSame defines if the color of the midpoint circle should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at CircleColor
	CircleSame   bool
	CircleColor  color.RGBA
	CircleRadius int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      false,
		LineColor:     Yellow,
		LineThickness: 1,
		CircleSame:    true,
		CircleColor:   Pink,
		CircleRadius:  3,
	}
}

// Trail draws the centroid history of each object as a line ending in a
// circle on its current centroid
func Trail(img *gocv.Mat, objs []counter.LabeledObject, style TrailStyle) {

	for _, obj := range objs {

		if len(obj.Trail) < 2 {
			continue
		}

		objClr := ObjectColor(obj.TrackID)

		lineClr := objClr
		circleClr := objClr

		if !style.LineSame {
			lineClr = style.LineColor
		}

		if !style.CircleSame {
			circleClr = style.CircleColor
		}

		for i := 1; i < len(obj.Trail); i++ {
			gocv.Line(img, obj.Trail[i-1].ImagePoint(), obj.Trail[i].ImagePoint(),
				lineClr, style.LineThickness)
		}

		gocv.Circle(img, obj.Trail[len(obj.Trail)-1].ImagePoint(),
			style.CircleRadius, circleClr, -1)
	}
}
