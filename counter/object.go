package counter

// Object represents a tracked object reported by the upstream tracker for
// a single frame
type Object struct {
	// TrackID is the identity assigned by the tracker. It is unique among
	// the currently active tracks but may be reused later in a session
	TrackID int
	// ClassID is the detector class index, resolved to a name through
	// ClassNames
	ClassID int
	// Box is the bounding box of the object in image pixel space
	Box Box
	// Score is the detection confidence, carried through for output only
	Score float32
}

// NewObject is a constructor function for the Object struct
func NewObject(trackID, classID int, box Box, score float32) Object {
	return Object{
		TrackID: trackID,
		ClassID: classID,
		Box:     box,
		Score:   score,
	}
}
