package counter

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// State is the lifecycle state of a Session
type State int

const (
	// StateUninitialized is a session that has not processed a frame, its
	// boundary has not been built yet
	StateUninitialized State = 0
	// StateActive is a session whose boundary is fixed and which is counting
	StateActive State = 1
)

// String returns the name of the state
func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "uninitialized"
}

// Crossing is a single counted boundary crossing
type Crossing struct {
	TrackID   int
	Class     string
	Direction Direction
}

// Results is the outcome of processing a frame
type Results struct {
	// InCount and OutCount are the cumulative totals of the session
	InCount  int
	OutCount int
	// Classwise holds the cumulative counts of every class observed so far
	Classwise map[string]Counts
	// Classes lists the Classwise keys in the order they were first observed
	Classes []string
	// TotalTracks is the number of objects tracked in this frame
	TotalTracks int
	// Crossings are the crossings counted in this frame
	Crossings []Crossing
}

// Session holds the counting state of a single video stream.  It is not safe
// for concurrent use, independent streams should each use their own Session.
type Session struct {
	id       uuid.UUID
	cfg      Config
	names    ClassNames
	state    State
	boundary *Boundary
	history  *History
	counts   *Aggregator
	log      logrus.FieldLogger
	// trailLen is the number of recent centroids handed to the renderer per
	// object, 0 disables trails
	trailLen int
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger crossing events are written to
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTrail includes up to n recent centroids of each track in the
// annotation for trail drawing
func WithTrail(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.trailLen = n
		}
	}
}

// WithID sets the session id used in log output instead of a random one
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession returns a Session counting with the given config and class
// names.  The boundary is built from the config on the first Update.
func NewSession(cfg Config, names ClassNames, opts ...Option) *Session {

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Session{
		id:      uuid.New(),
		cfg:     cfg,
		names:   names,
		state:   StateUninitialized,
		history: NewHistory(),
		counts:  NewAggregator(),
		log:     discard,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.WithField("session", s.id.String())

	return s
}

// ID returns the session id
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the lifecycle state of the session
func (s *Session) State() State {
	return s.state
}

// Boundary returns the counting boundary, nil before the first Update
func (s *Session) Boundary() *Boundary {
	return s.boundary
}

// History returns the track history of the session
func (s *Session) History() *History {
	return s.history
}

// Counts returns the count aggregator of the session
func (s *Session) Counts() *Aggregator {
	return s.counts
}

// SetConfig replaces the session config.  Display settings take effect on the
// next frame, the region is only read once when the session initialises and
// later changes to it are ignored.
func (s *Session) SetConfig(cfg Config) {
	s.cfg = cfg
}

// init builds the boundary from the config, once
func (s *Session) init() {

	if s.state != StateUninitialized {
		return
	}

	s.boundary = NewBoundary(s.cfg.Points(), s.cfg.RegionMargin)
	s.state = StateActive

	s.log.WithFields(logrus.Fields{
		"kind":   s.boundary.Kind().String(),
		"points": len(s.boundary.points),
	}).Info("counting boundary initialised")
}

// Update processes the tracked objects of one frame, in the order given,
// and returns the cumulative results and the annotation for rendering
func (s *Session) Update(objs []Object) (Results, Annotation) {

	s.init()

	ann := Annotation{
		Region:    s.boundary.Points(),
		LineWidth: s.cfg.Width(),
		Objects:   make([]LabeledObject, 0, len(objs)),
	}

	var crossings []Crossing

	for _, obj := range objs {

		class := s.names.Name(obj.ClassID)
		centroid := obj.Box.Center()

		s.history.Add(obj.TrackID, centroid)
		s.counts.EnsureClass(class)

		if !s.counts.Counted(obj.TrackID) {
			prev := s.history.Previous(obj.TrackID)

			if dir, crossed := Detect(prev, centroid, s.boundary); crossed {
				if s.counts.Record(obj.TrackID, class, dir) {
					crossings = append(crossings, Crossing{
						TrackID:   obj.TrackID,
						Class:     class,
						Direction: dir,
					})

					s.log.WithFields(logrus.Fields{
						"track_id":  obj.TrackID,
						"class":     class,
						"direction": dir.String(),
					}).Debug("boundary crossing counted")
				}
			}
		}

		lo := LabeledObject{
			TrackID: obj.TrackID,
			ClassID: obj.ClassID,
			Box:     obj.Box,
			Label:   class,
		}

		if s.trailLen > 0 {
			lo.Trail = s.history.Tail(obj.TrackID, s.trailLen)
		}

		ann.Objects = append(ann.Objects, lo)
	}

	ann.Counts = countLabels(s.counts, s.cfg.ShowInLabel(), s.cfg.ShowOutLabel())

	res := Results{
		InCount:     s.counts.In(),
		OutCount:    s.counts.Out(),
		Classwise:   s.counts.Classwise(),
		Classes:     s.counts.Classes(),
		TotalTracks: len(objs),
		Crossings:   crossings,
	}

	return res, ann
}
