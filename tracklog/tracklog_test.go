package tracklog

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-objcount/counter"
	"github.com/tidwall/gjson"
)

const sampleLog = `{"frame":0,"tracks":[{"id":1,"class":0,"box":[40,90,60,110],"score":0.9}]}

{"frame":1,"tracks":[{"id":1,"class":0,"box":[140,90,160,110],"score":0.88},{"id":2,"class":2,"box":[0,0,10,10]}]}
{"tracks":[]}
`

func TestParse(t *testing.T) {

	entry, err := Parse([]byte(`{"frame":4,"tracks":[{"id":9,"class":1,"box":[1,2,3,4.5],"score":0.5}]}`), 0)
	require.NoError(t, err)

	assert.Equal(t, 4, entry.Frame)
	assert.Equal(t, []counter.Object{
		counter.NewObject(9, 1, counter.NewBox(1, 2, 3, 4.5), 0.5),
	}, entry.Objects)

	entry, err = Parse([]byte(`{"tracks":[]}`), 17)
	require.NoError(t, err)
	assert.Equal(t, 17, entry.Frame)
	assert.Empty(t, entry.Objects)
}

func TestParseErrors(t *testing.T) {

	tests := []string{
		`{"frame":1,`,
		`{"tracks":[{"class":1,"box":[1,2,3,4]}]}`,
		`{"tracks":[{"id":1,"box":[1,2,3,4]}]}`,
		`{"tracks":[{"id":1,"class":1,"box":[1,2,3]}]}`,
		`{"tracks":[{"id":"abc","class":1,"box":[1,2,3,4]}]}`,
		`{"tracks":[{"id":1,"class":"x","box":[1,2,3,4]}]}`,
		`{"tracks":[{"id":1,"class":1,"box":["a",null,true,{}]}]}`,
		`{"tracks":[{"id":1,"class":1,"box":[1,2,3,"4"]}]}`,
		`{"tracks":[{"id":1,"class":1,"box":[1,2,3,4],"score":"high"}]}`,
		`{"frame":"7","tracks":[]}`,
	}

	for _, line := range tests {
		if _, err := Parse([]byte(line), 0); err == nil {
			t.Errorf("expected error parsing %s", line)
		}
	}
}

func TestRead(t *testing.T) {

	l, err := Read(strings.NewReader(sampleLog))
	require.NoError(t, err)

	// the line without a frame key takes its line index
	assert.Equal(t, []int{0, 1, 3}, l.Frames())
	assert.Equal(t, 3, l.Len())
	assert.Len(t, l.Objects(1), 2)
	assert.Nil(t, l.Objects(99))

	objs, err := l.Track(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, counter.Pt(50, 100), objs[0].Box.Center())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Track(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadErrors(t *testing.T) {

	_, err := Read(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrNoFrames)

	_, err = Read(strings.NewReader(`{"frame":0,"tracks":[]}` + "\nnot json\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = Load("/nonexistent/track.jsonl")
	assert.Error(t, err)
}

// TestLogAsTracker counts over a track log through a counter Processor
func TestLogAsTracker(t *testing.T) {

	l, err := Read(strings.NewReader(sampleLog))
	require.NoError(t, err)

	cfg := counter.DefaultConfig()
	cfg.Region = [][2]float64{{100, 0}, {100, 200}}

	p := counter.NewProcessor[int](counter.NewSession(cfg, counter.ClassNames{"person"}), l, nil)

	var last counter.Frame[int]

	for _, frame := range l.Frames() {
		last, err = p.Process(context.Background(), frame)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, last.InCount)
	assert.Equal(t, counter.Counts{In: 1}, last.Classwise["person"])
	assert.Equal(t, counter.Counts{}, last.Classwise[counter.UnknownClass])
}

func TestEncodeResults(t *testing.T) {

	res := counter.Results{
		InCount:  2,
		OutCount: 1,
		Classwise: map[string]counter.Counts{
			"person":        {In: 2},
			"traffic.light": {Out: 1},
		},
		Classes:     []string{"person", "traffic.light"},
		TotalTracks: 4,
		Crossings: []counter.Crossing{
			{TrackID: 7, Class: "person", Direction: counter.In},
		},
	}

	out, err := EncodeResults(12, res)
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(out))

	doc := gjson.ParseBytes(out)
	assert.Equal(t, int64(12), doc.Get("frame").Int())
	assert.Equal(t, int64(2), doc.Get("in_count").Int())
	assert.Equal(t, int64(1), doc.Get("out_count").Int())
	assert.Equal(t, int64(4), doc.Get("total_tracks").Int())
	assert.Equal(t, int64(2), doc.Get("classwise_count.person.IN").Int())
	assert.Equal(t, int64(1), doc.Get(`classwise_count.traffic\.light.OUT`).Int())
	assert.Equal(t, int64(1), doc.Get("crossings.#").Int())
	assert.Equal(t, "IN", doc.Get("crossings.0.direction").String())
	assert.Equal(t, int64(7), doc.Get("crossings.0.track_id").Int())
}

func TestEncodeResultsBracketLabels(t *testing.T) {

	for _, class := range []string{"[x]", "{}", "a[0].b"} {

		res := counter.Results{
			Classes:   []string{class},
			Classwise: map[string]counter.Counts{class: {In: 1, Out: 2}},
		}

		out, err := EncodeResults(1, res)
		require.NoError(t, err)
		require.True(t, gjson.ValidBytes(out))

		var keys []string
		var counts gjson.Result

		gjson.GetBytes(out, "classwise_count").ForEach(func(k, v gjson.Result) bool {
			keys = append(keys, k.String())
			counts = v
			return true
		})

		assert.Equal(t, []string{class}, keys)
		assert.Equal(t, int64(1), counts.Get("IN").Int())
		assert.Equal(t, int64(2), counts.Get("OUT").Int())
	}
}

func TestEncodeEmptyResults(t *testing.T) {

	out, err := EncodeResults(0, counter.Results{})
	require.NoError(t, err)

	doc := gjson.ParseBytes(out)
	assert.True(t, doc.Get("classwise_count").IsObject())
	assert.True(t, doc.Get("crossings").IsArray())
	assert.Equal(t, int64(0), doc.Get("crossings.#").Int())
}

func TestResultWriter(t *testing.T) {

	var buf bytes.Buffer
	rw := NewResultWriter(&buf)

	require.NoError(t, rw.Write(0, counter.Results{TotalTracks: 1}))
	require.NoError(t, rw.Write(1, counter.Results{InCount: 1}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), gjson.Get(lines[1], "in_count").Int())
}
