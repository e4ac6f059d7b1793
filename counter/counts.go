package counter

// Counts holds the number of crossings in each direction
type Counts struct {
	In  int `json:"IN"`
	Out int `json:"OUT"`
}

// Total returns In+Out
func (c Counts) Total() int {
	return c.In + c.Out
}

// Aggregator keeps the global and per class crossing totals of a session,
// along with the set of track ids that have already been counted
type Aggregator struct {
	in  int
	out int
	// classwise counts keyed by class name
	classwise map[string]*Counts
	// classes in the order they were first observed
	classes []string
	// counted is the set of track ids that contributed a crossing. It only
	// ever grows
	counted map[int]struct{}
}

// NewAggregator returns an empty Aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{
		classwise: make(map[string]*Counts),
		counted:   make(map[int]struct{}),
	}
}

// EnsureClass creates a zeroed entry for the class if it has not been seen
// before, so observed classes appear in output before any crossing
func (a *Aggregator) EnsureClass(label string) {
	a.class(label)
}

// class returns the counts entry for the label, creating it when absent
func (a *Aggregator) class(label string) *Counts {

	c, exists := a.classwise[label]

	if !exists {
		c = &Counts{}
		a.classwise[label] = c
		a.classes = append(a.classes, label)
	}

	return c
}

// Counted reports whether the track id has already contributed a crossing
func (a *Aggregator) Counted(trackID int) bool {
	_, exists := a.counted[trackID]
	return exists
}

// Record commits a crossing for the track.  Global and classwise totals are
// incremented together and the track is marked counted.  Tracks already
// counted are ignored and false is returned.
func (a *Aggregator) Record(trackID int, label string, dir Direction) bool {

	if a.Counted(trackID) {
		return false
	}

	a.counted[trackID] = struct{}{}
	c := a.class(label)

	if dir == In {
		a.in++
		c.In++
	} else {
		a.out++
		c.Out++
	}

	return true
}

// In returns the total number of In crossings
func (a *Aggregator) In() int {
	return a.in
}

// Out returns the total number of Out crossings
func (a *Aggregator) Out() int {
	return a.out
}

// Class returns the counts for a single class and whether it has been seen
func (a *Aggregator) Class(label string) (Counts, bool) {

	if c, exists := a.classwise[label]; exists {
		return *c, true
	}

	return Counts{}, false
}

// Classes returns the class names in the order they were first observed
func (a *Aggregator) Classes() []string {
	out := make([]string, len(a.classes))
	copy(out, a.classes)
	return out
}

// Classwise returns a copy of the per class counts
func (a *Aggregator) Classwise() map[string]Counts {

	out := make(map[string]Counts, len(a.classwise))

	for label, c := range a.classwise {
		out[label] = *c
	}

	return out
}
