package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-objcount/counter"
	"github.com/swdee/go-objcount/tracklog"
	"github.com/tidwall/gjson"
)

const trackLog = `{"frame":0,"tracks":[{"id":1,"class":0,"box":[40,90,60,110]},{"id":2,"class":1,"box":[140,40,160,60]}]}
{"frame":1,"tracks":[{"id":1,"class":0,"box":[140,90,160,110]},{"id":2,"class":1,"box":[40,40,60,60]}]}
{"frame":2,"tracks":[{"id":1,"class":0,"box":[40,90,60,110]}]}
`

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestCountLog(t *testing.T) {

	cfg := writeTemp(t, "counter.json", `{"region": [[100, 0], [100, 200]]}`)
	labels := writeTemp(t, "labels.txt", "person\ncar\n")
	tracks := writeTemp(t, "tracks.jsonl", trackLog)

	app, err := NewApp(quietLogger(), cfg, labels, tracks, "", 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	app.results = tracklog.NewResultWriter(&buf)

	require.NoError(t, app.CountLog(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	last := gjson.Parse(lines[2])
	assert.Equal(t, int64(1), last.Get("in_count").Int())
	assert.Equal(t, int64(1), last.Get("out_count").Int())
	assert.Equal(t, int64(1), last.Get("classwise_count.person.IN").Int())
	assert.Equal(t, int64(1), last.Get("classwise_count.car.OUT").Int())
	assert.Equal(t, int64(1), last.Get("total_tracks").Int())

	// track 1 moving back across the line is not counted again
	assert.Equal(t, int64(0), last.Get("crossings.#").Int())
}

func TestNewAppRegionOverride(t *testing.T) {

	tracks := writeTemp(t, "tracks.jsonl", trackLog)

	// horizontal line nobody crosses
	app, err := NewApp(quietLogger(), "", "", tracks, "0,150;300,150", 0)
	require.NoError(t, err)

	app.results = tracklog.NewResultWriter(io.Discard)
	require.NoError(t, app.CountLog(context.Background()))

	assert.Equal(t, 0, app.session.Counts().In())
	assert.Equal(t, 0, app.session.Counts().Out())
}

func TestNewAppErrors(t *testing.T) {

	tracks := writeTemp(t, "tracks.jsonl", trackLog)

	_, err := NewApp(quietLogger(), "", "", tracks, "1,2,3", 0)
	assert.Error(t, err)

	_, err = NewApp(quietLogger(), "", "", filepath.Join(t.TempDir(), "none.jsonl"), "", 0)
	assert.Error(t, err)

	_, err = NewApp(quietLogger(), writeTemp(t, "c.txt", "{}"), "", tracks, "", 0)
	assert.Error(t, err)
}

func TestOpenResults(t *testing.T) {

	out, err := openResults("")
	require.NoError(t, err)
	assert.NoError(t, out.Close())

	// stdout is left open
	_, err = os.Stdout.Write(nil)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.jsonl")
	out, err = openResults(path)
	require.NoError(t, err)

	require.NoError(t, tracklog.NewResultWriter(out).Write(0, counter.Results{InCount: 1}))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gjson.GetBytes(data, "in_count").Int())

	_, err = openResults(filepath.Join(t.TempDir(), "missing", "results.jsonl"))
	assert.Error(t, err)
}
