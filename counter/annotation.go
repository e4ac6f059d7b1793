package counter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// LabeledObject is a tracked object prepared for rendering
type LabeledObject struct {
	TrackID int
	ClassID int
	Box     Box
	// Label is the class name of the object
	Label string
	// Trail is the most recent centroid history of the track, empty unless
	// the session was created WithTrail
	Trail []Point
}

// CountLabel is the rendered count text of a single class
type CountLabel struct {
	// Class is the capitalised class name
	Class string
	// Text is the formatted count, eg: "IN 3 OUT 1"
	Text string
}

// Annotation is everything a Renderer needs to annotate a frame.  The
// counter supplies the data only, drawing is up to the Renderer.
type Annotation struct {
	Region    Region
	LineWidth int
	Objects   []LabeledObject
	Counts    []CountLabel
}

// countLabels formats the per class counts for display.  Only classes with
// at least one crossing are included, in the order they were first seen.
func countLabels(agg *Aggregator, showIn, showOut bool) []CountLabel {

	var labels []CountLabel

	for _, class := range agg.Classes() {
		c, _ := agg.Class(class)

		if c.In == 0 && c.Out == 0 {
			continue
		}

		labels = append(labels, CountLabel{
			Class: capitalize(class),
			Text:  formatCounts(c, showIn, showOut),
		})
	}

	return labels
}

// formatCounts renders counts as "IN n OUT n" leaving out hidden directions
func formatCounts(c Counts, showIn, showOut bool) string {

	var in, out string

	if showIn {
		in = fmt.Sprintf("IN %d", c.In)
	}

	if showOut {
		out = fmt.Sprintf("OUT %d", c.Out)
	}

	return strings.TrimSpace(in + " " + out)
}

// capitalize upper cases the first rune of s and lower cases the rest
func capitalize(s string) string {

	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
