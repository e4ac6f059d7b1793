package counter

import (
	"context"
	"fmt"
)

// Tracker is the upstream detector and tracker collaborator.  It returns the
// tracked objects of the given image.
type Tracker[I any] interface {
	Track(ctx context.Context, img I) ([]Object, error)
}

// TrackerFunc adapts a function to the Tracker interface
type TrackerFunc[I any] func(ctx context.Context, img I) ([]Object, error)

// Track calls f(ctx, img)
func (f TrackerFunc[I]) Track(ctx context.Context, img I) ([]Object, error) {
	return f(ctx, img)
}

// Renderer draws an Annotation onto an image and returns the annotated image
type Renderer[I any] interface {
	Render(img I, ann Annotation) (I, error)
}

// Frame is the results record of a processed image
type Frame[I any] struct {
	// Image is the annotated image, or the input image when no Renderer is
	// set
	Image I
	Results
}

// Processor runs a Session over images, obtaining objects from a Tracker and
// handing annotations to a Renderer
type Processor[I any] struct {
	session  *Session
	tracker  Tracker[I]
	renderer Renderer[I]
}

// NewProcessor returns a Processor.  The renderer may be nil, in which case
// images are passed through untouched.
func NewProcessor[I any](session *Session, tracker Tracker[I],
	renderer Renderer[I]) *Processor[I] {

	return &Processor[I]{
		session:  session,
		tracker:  tracker,
		renderer: renderer,
	}
}

// Session returns the Session the processor counts with
func (p *Processor[I]) Session() *Session {
	return p.session
}

// Process tracks the objects in img, updates the counts and renders the
// annotation.  Tracker and renderer failures are returned to the caller.
func (p *Processor[I]) Process(ctx context.Context, img I) (Frame[I], error) {

	objs, err := p.tracker.Track(ctx, img)

	if err != nil {
		return Frame[I]{Image: img}, fmt.Errorf("tracker failed: %w", err)
	}

	res, ann := p.session.Update(objs)

	out := Frame[I]{
		Image:   img,
		Results: res,
	}

	if p.renderer == nil {
		return out, nil
	}

	out.Image, err = p.renderer.Render(img, ann)

	if err != nil {
		return out, fmt.Errorf("renderer failed: %w", err)
	}

	return out, nil
}
