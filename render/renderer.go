package render

import (
	"errors"
	"image/color"

	"github.com/swdee/go-objcount/counter"
	"gocv.io/x/gocv"
)

// ErrEmptyImage is returned when asked to render onto an empty Mat
var ErrEmptyImage = errors.New("cannot render onto empty image")

// Renderer draws counter annotations onto video frames.  It implements
// counter.Renderer for *gocv.Mat images, drawing in place.
type Renderer struct {
	// RegionColor is the colour of the counting boundary
	RegionColor color.RGBA
	// PanelColor is the background of the counts panel
	PanelColor color.RGBA
	// PanelMargin is the spacing around each counts panel row
	PanelMargin int
	// Trails enables drawing of the centroid history of each object
	Trails     bool
	TrailStyle TrailStyle
	// font overrides the font derived from the annotation line width
	font *Font
}

// NewRenderer returns a Renderer with the default colours and no trails
func NewRenderer() *Renderer {
	return &Renderer{
		RegionColor: Purple,
		PanelColor:  Navy,
		PanelMargin: 10,
		TrailStyle:  DefaultTrailStyle(),
	}
}

// WithFont fixes the font used for labels instead of scaling it with the
// line width
func (r *Renderer) WithFont(f Font) *Renderer {
	r.font = &f
	return r
}

// Render draws the region, object boxes, trails and count labels onto img
// and returns it
func (r *Renderer) Render(img *gocv.Mat, ann counter.Annotation) (*gocv.Mat, error) {

	if img == nil || img.Empty() {
		return img, ErrEmptyImage
	}

	lineWidth := ann.LineWidth
	if lineWidth <= 0 {
		lineWidth = counter.DefaultLineWidth
	}

	font := ScaledFont(lineWidth)
	if r.font != nil {
		font = *r.font
	}

	Region(img, ann.Region, r.RegionColor, lineWidth*2)

	if r.Trails {
		Trail(img, ann.Objects, r.TrailStyle)
	}

	ObjectBoxes(img, ann.Objects, font, lineWidth)

	if len(ann.Counts) > 0 {
		CountsPanel(img, ann.Counts, font, r.PanelColor, r.PanelMargin)
	}

	return img, nil
}
