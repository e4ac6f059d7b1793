// Package tracklog reads tracker output recorded as JSON lines and writes
// per frame counting results in the same format.
//
// Each input line holds the tracked objects of one frame:
//
//	{"frame":12,"tracks":[{"id":3,"class":0,"box":[x1,y1,x2,y2],"score":0.91}]}
//
// The "frame" key is optional, lines without it take the line index.
package tracklog

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/swdee/go-objcount/counter"
	"github.com/tidwall/gjson"
)

// ErrNoFrames is returned when a track log contains no frames
var ErrNoFrames = errors.New("track log has no frames")

// maxLineSize is the longest line accepted, busy frames with many tracks
// exceed bufio's default
const maxLineSize = 4 * 1024 * 1024

// Entry is the parsed content of one track log line
type Entry struct {
	Frame   int
	Objects []counter.Object
}

// Parse decodes a single track log line.  The fallback frame number is used
// when the line has no "frame" key.
func Parse(line []byte, fallback int) (Entry, error) {

	if !gjson.ValidBytes(line) {
		return Entry{}, errors.New("invalid JSON")
	}

	entry := Entry{Frame: fallback}

	if frame := gjson.GetBytes(line, "frame"); frame.Exists() {
		if frame.Type != gjson.Number {
			return Entry{}, fmt.Errorf("frame is not a number: %s", frame.Raw)
		}
		entry.Frame = int(frame.Int())
	}

	var err error

	gjson.GetBytes(line, "tracks").ForEach(func(idx, track gjson.Result) bool {

		// id and class are required, score is optional
		id := track.Get("id")
		class := track.Get("class")

		if !id.Exists() || !class.Exists() {
			err = fmt.Errorf("track %d is missing id or class", idx.Int())
			return false
		}

		if id.Type != gjson.Number || class.Type != gjson.Number {
			err = fmt.Errorf("track %d id and class must be numbers", idx.Int())
			return false
		}

		score := track.Get("score")

		if score.Exists() && score.Type != gjson.Number {
			err = fmt.Errorf("track %d score is not a number: %s", idx.Int(), score.Raw)
			return false
		}

		box := track.Get("box").Array()

		if len(box) != 4 {
			err = fmt.Errorf("track %d box has %d values, expected 4", idx.Int(), len(box))
			return false
		}

		for i, v := range box {
			if v.Type != gjson.Number {
				err = fmt.Errorf("track %d box value %d is not a number: %s", idx.Int(), i, v.Raw)
				return false
			}
		}

		entry.Objects = append(entry.Objects, counter.NewObject(
			int(id.Int()),
			int(class.Int()),
			counter.NewBox(box[0].Float(), box[1].Float(), box[2].Float(), box[3].Float()),
			float32(score.Float()),
		))

		return true
	})

	if err != nil {
		return Entry{}, err
	}

	return entry, nil
}

// Log is a track log loaded into memory, indexed by frame number.  It
// implements counter.Tracker for images identified by frame number.
type Log struct {
	frames map[int][]counter.Object
}

// Read parses every line of the track log.  Blank lines are skipped but
// still advance the fallback frame number.
func Read(r io.Reader) (*Log, error) {

	l := &Log{
		frames: make(map[int][]counter.Object),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0

	for scanner.Scan() {
		line := scanner.Bytes()
		lineNum++

		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		entry, err := Parse(line, lineNum-1)

		if err != nil {
			return nil, fmt.Errorf("track log line %d: %w", lineNum, err)
		}

		// repeated frame numbers accumulate objects
		l.frames[entry.Frame] = append(l.frames[entry.Frame], entry.Objects...)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading track log: %w", err)
	}

	if len(l.frames) == 0 {
		return nil, ErrNoFrames
	}

	return l, nil
}

// Load reads the track log file at path
func Load(path string) (*Log, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("error opening track log: %w", err)
	}

	defer f.Close()

	return Read(f)
}

// Frames returns the frame numbers in the log in ascending order
func (l *Log) Frames() []int {

	frames := make([]int, 0, len(l.frames))

	for f := range l.frames {
		frames = append(frames, f)
	}

	sort.Ints(frames)

	return frames
}

// Len returns the number of frames in the log
func (l *Log) Len() int {
	return len(l.frames)
}

// Objects returns the tracked objects of a frame, nil for frames with no
// entry
func (l *Log) Objects(frame int) []counter.Object {
	return l.frames[frame]
}

// Track returns the tracked objects recorded for the frame number
func (l *Log) Track(ctx context.Context, frame int) ([]counter.Object, error) {

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return l.Objects(frame), nil
}
