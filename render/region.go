package render

import (
	"image"
	"image/color"

	"github.com/swdee/go-objcount/counter"
	"gocv.io/x/gocv"
)

// Region draws the counting boundary.  A two point region is drawn as a line
// and larger regions as a closed polygon, with a dot on every vertex.
func Region(img *gocv.Mat, region counter.Region, clr color.RGBA, thickness int) {

	pts := region.ImagePoints()

	switch {
	case len(pts) < 2:
		// counting disabled, nothing to draw
		return

	case len(pts) == 2:
		gocv.Line(img, pts[0], pts[1], clr, thickness)

	default:
		pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
		defer pv.Close()

		gocv.Polylines(img, pv, true, clr, thickness)
	}

	for _, pt := range pts {
		gocv.Circle(img, pt, thickness*2, clr, -1)
	}
}

// CountsPanel draws one count label per row in the top right corner of the
// image on a filled background
func CountsPanel(img *gocv.Mat, labels []counter.CountLabel, font Font,
	bg color.RGBA, margin int) {

	offsetY := margin

	for _, label := range labels {

		text := label.Class + ": " + label.Text
		textW, textH := font.textSize(text)

		textX := img.Cols() - textW - margin*2
		textY := offsetY + textH + margin

		rect := image.Rect(textX-margin, textY-textH-margin,
			textX+textW+margin, textY+margin)

		gocv.Rectangle(img, rect, bg, -1)

		gocv.PutTextWithParams(img, text, image.Pt(textX, textY),
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)

		offsetY = rect.Max.Y + margin
	}
}
