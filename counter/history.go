package counter

// Track is the centroid history of a single track id
type Track struct {
	points []Point
}

// History keeps the centroid history of every track id seen in a session.
// Histories are append only and are not trimmed for the life of the session.
type History struct {
	tracks map[int]*Track
}

// NewHistory returns an empty track history
func NewHistory() *History {
	return &History{
		tracks: make(map[int]*Track),
	}
}

// Add appends the centroid to the history of the track id and returns the
// number of points now recorded for it
func (h *History) Add(trackID int, centroid Point) int {

	// init track if no history exists yet for track id
	track, exists := h.tracks[trackID]

	if !exists {
		track = &Track{}
		h.tracks[trackID] = track
	}

	track.points = append(track.points, centroid)

	return len(track.points)
}

// Previous returns the second most recent point of the track, or nil when
// fewer than two points have been recorded
func (h *History) Previous(trackID int) *Point {

	track, exists := h.tracks[trackID]

	if !exists || len(track.points) < 2 {
		return nil
	}

	prev := track.points[len(track.points)-2]
	return &prev
}

// Last returns the most recent point of the track
func (h *History) Last(trackID int) (Point, bool) {

	track, exists := h.tracks[trackID]

	if !exists || len(track.points) == 0 {
		return Point{}, false
	}

	return track.points[len(track.points)-1], true
}

// Points returns a copy of the point history for a track id
func (h *History) Points(trackID int) []Point {

	track, exists := h.tracks[trackID]

	if !exists {
		// no history yet
		return nil
	}

	out := make([]Point, len(track.points))
	copy(out, track.points)
	return out
}

// Tail returns a copy of at most the n most recent points of a track
func (h *History) Tail(trackID int, n int) []Point {

	pts := h.Points(trackID)

	if n > 0 && len(pts) > n {
		return pts[len(pts)-n:]
	}

	return pts
}

// Len returns the number of track ids with a history
func (h *History) Len() int {
	return len(h.tracks)
}
