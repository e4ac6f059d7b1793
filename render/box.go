package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-objcount/counter"
	"gocv.io/x/gocv"
)

// boxLabel holds the precalculated details of a label drawn above a box
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// ObjectBoxes renders the bounding box and class label of each tracked
// object, coloured by track id
func ObjectBoxes(img *gocv.Mat, objs []counter.LabeledObject, font Font,
	lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(objs))

	for _, obj := range objs {

		rect := obj.Box.Rect()
		useClr := ObjectColor(obj.TrackID)

		// draw rectangle around tracked object
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := fmt.Sprintf("%s %d", obj.Label, obj.TrackID)
		textW, textH := font.textSize(text)

		// Calculate the alignment of text label
		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (rect.Min.X + rect.Max.X) / 2

		case Right:
			centerX = rect.Max.X - (textW / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = rect.Min.X + (textW / 2) + font.LeftPad - (lineThickness / 2)
		}

		// labels of boxes touching the top edge go inside the box
		top := rect.Min.Y
		if top-textH-font.TopPad-font.BottomPad < 0 {
			top = rect.Min.Y + textH + font.TopPad + font.BottomPad
		}

		boxLabels = append(boxLabels, boxLabel{
			rect: image.Rect(centerX-textW/2-font.LeftPad,
				top-textH-font.TopPad-font.BottomPad,
				centerX+textW/2+font.RightPad, top),
			clr:     useClr,
			text:    text,
			textPos: image.Pt(centerX-textW/2, top-font.BottomPad),
		})
	}

	// draw all labels last so they are the top most layer and don't get
	// overlapped by neighbouring boxes or trails
	for _, box := range boxLabels {
		gocv.Rectangle(img, box.rect, box.clr, -1)

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
