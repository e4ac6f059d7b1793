package tracklog

import (
	"fmt"
	"io"
	"strings"

	"github.com/swdee/go-objcount/counter"
	"github.com/tidwall/sjson"
)

// pathEscaper escapes the characters sjson treats as path syntax so class
// names are used as literal keys
var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`?`, `\?`,
	`|`, `\|`,
	`#`, `\#`,
	`@`, `\@`,
)

// EncodeResults renders the results of a frame as a single JSON object:
//
//	{"frame":12,"in_count":3,"out_count":1,"total_tracks":5,
//	 "classwise_count":{"person":{"IN":3,"OUT":1}},
//	 "crossings":[{"track_id":7,"class":"person","direction":"IN"}]}
func EncodeResults(frame int, res counter.Results) ([]byte, error) {

	out := []byte(`{}`)

	fields := []struct {
		path  string
		value interface{}
	}{
		{"frame", frame},
		{"in_count", res.InCount},
		{"out_count", res.OutCount},
		{"total_tracks", res.TotalTracks},
	}

	var err error

	for _, f := range fields {
		if out, err = sjson.SetBytes(out, f.path, f.value); err != nil {
			return nil, fmt.Errorf("error setting %s: %w", f.path, err)
		}
	}

	// always emit the object even before any class has been seen
	if out, err = sjson.SetRawBytes(out, "classwise_count", []byte(`{}`)); err != nil {
		return nil, fmt.Errorf("error setting classwise_count: %w", err)
	}

	// one set per class, a second lookup of a key holding path syntax such
	// as brackets would not find it and append a duplicate
	for _, class := range res.Classes {
		key := "classwise_count." + pathEscaper.Replace(class)

		if out, err = sjson.SetBytes(out, key, res.Classwise[class]); err != nil {
			return nil, fmt.Errorf("error setting counts for %q: %w", class, err)
		}
	}

	if out, err = sjson.SetRawBytes(out, "crossings", []byte(`[]`)); err != nil {
		return nil, fmt.Errorf("error setting crossings: %w", err)
	}

	for _, c := range res.Crossings {
		out, err = sjson.SetBytes(out, "crossings.-1", map[string]interface{}{
			"track_id":  c.TrackID,
			"class":     c.Class,
			"direction": c.Direction.String(),
		})

		if err != nil {
			return nil, fmt.Errorf("error appending crossing: %w", err)
		}
	}

	return out, nil
}

// ResultWriter writes frame results as JSON lines
type ResultWriter struct {
	w io.Writer
}

// NewResultWriter returns a ResultWriter writing to w
func NewResultWriter(w io.Writer) *ResultWriter {
	return &ResultWriter{w: w}
}

// Write encodes and writes the results of a frame followed by a newline
func (rw *ResultWriter) Write(frame int, res counter.Results) error {

	line, err := EncodeResults(frame, res)

	if err != nil {
		return err
	}

	line = append(line, '\n')

	if _, err := rw.w.Write(line); err != nil {
		return fmt.Errorf("error writing results: %w", err)
	}

	return nil
}
