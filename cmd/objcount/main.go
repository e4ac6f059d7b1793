package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/swdee/go-objcount/counter"
	"github.com/swdee/go-objcount/render"
	"github.com/swdee/go-objcount/tracklog"
	"gocv.io/x/gocv"
)

// frame pairs a decoded video frame with its frame number in the track log
type frame struct {
	num int
	img *gocv.Mat
}

// logTracker looks up the tracked objects of a video frame in the track log
type logTracker struct {
	log *tracklog.Log
}

func (t logTracker) Track(ctx context.Context, f frame) ([]counter.Object, error) {
	return t.log.Track(ctx, f.num)
}

// matRenderer annotates the Mat of a video frame in place
type matRenderer struct {
	r *render.Renderer
}

func (m matRenderer) Render(f frame, ann counter.Annotation) (frame, error) {
	img, err := m.r.Render(f.img, ann)
	return frame{num: f.num, img: img}, err
}

// App holds the settings and collaborators of a counting run
type App struct {
	log      *logrus.Logger
	tracks   *tracklog.Log
	session  *counter.Session
	results  *tracklog.ResultWriter
	trails   bool
	vidFile  string
	saveFile string
}

// NewApp loads the config, labels and track log and creates the session
func NewApp(log *logrus.Logger, cfgFile, labelFile, trackFile, region string,
	trailLen int) (*App, error) {

	cfg := counter.DefaultConfig()

	if cfgFile != "" {
		var err error
		cfg, err = counter.LoadConfig(cfgFile)

		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	}

	if region != "" {
		pts, err := counter.ParseRegion(region)

		if err != nil {
			return nil, fmt.Errorf("error parsing region: %w", err)
		}

		cfg.Region = pts
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var names counter.ClassNames

	if labelFile != "" {
		var err error
		names, err = counter.LoadClassNames(labelFile)

		if err != nil {
			return nil, err
		}
	}

	tracks, err := tracklog.Load(trackFile)

	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"frames":  tracks.Len(),
		"classes": len(names),
		"points":  len(cfg.Region),
	}).Info("loaded track log")

	return &App{
		log:    log,
		tracks: tracks,
		session: counter.NewSession(cfg, names,
			counter.WithLogger(log), counter.WithTrail(trailLen)),
		trails: trailLen > 0,
	}, nil
}

// CountLog counts over the frames of the track log alone
func (a *App) CountLog(ctx context.Context) error {

	p := counter.NewProcessor[int](a.session, a.tracks, nil)

	for _, num := range a.tracks.Frames() {

		f, err := p.Process(ctx, num)

		if err != nil {
			return fmt.Errorf("frame %d: %w", num, err)
		}

		if err := a.results.Write(num, f.Results); err != nil {
			return err
		}
	}

	return nil
}

// CountVideo counts over the frames of the video, pairing each decoded
// frame with the track log entry of the same number and optionally saving
// the annotated video
func (a *App) CountVideo(ctx context.Context) error {

	video, err := gocv.VideoCaptureFile(a.vidFile)

	if err != nil {
		return fmt.Errorf("error opening video: %w", err)
	}

	defer video.Close()

	var renderer counter.Renderer[frame]
	var writer *gocv.VideoWriter

	if a.saveFile != "" {
		rd := render.NewRenderer()
		rd.Trails = a.trails
		renderer = matRenderer{r: rd}

		fps := video.Get(gocv.VideoCaptureFPS)
		width := int(video.Get(gocv.VideoCaptureFrameWidth))
		height := int(video.Get(gocv.VideoCaptureFrameHeight))

		writer, err = gocv.VideoWriterFile(a.saveFile, "mp4v", fps, width, height, true)

		if err != nil {
			return fmt.Errorf("error creating output video: %w", err)
		}

		defer writer.Close()
	}

	p := counter.NewProcessor[frame](a.session, logTracker{log: a.tracks}, renderer)

	img := gocv.NewMat()
	defer img.Close()

	for num := 0; ; num++ {

		if err := ctx.Err(); err != nil {
			return err
		}

		// read the next frame from the video
		if ok := video.Read(&img); !ok {
			// reached last video frame
			break
		}

		if img.Empty() {
			continue
		}

		f, err := p.Process(ctx, frame{num: num, img: &img})

		if err != nil {
			return fmt.Errorf("frame %d: %w", num, err)
		}

		if writer != nil {
			if err := writer.Write(*f.Image.img); err != nil {
				return fmt.Errorf("error writing frame %d: %w", num, err)
			}
		}

		if err := a.results.Write(num, f.Results); err != nil {
			return err
		}
	}

	return nil
}

// nopCloser keeps stdout open when results are written there
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openResults returns the destination for per frame results, the named file
// or stdout when path is empty
func openResults(path string) (io.WriteCloser, error) {

	if path == "" {
		return nopCloser{Writer: os.Stdout}, nil
	}

	return os.Create(path)
}

func main() {

	// read in cli flags
	cfgFile := flag.String("c", "", "JSON config file with region, show_in, show_out and line_width")
	labelFile := flag.String("l", "", "Text file containing model labels, one per line")
	trackFile := flag.String("t", "", "JSON lines track log produced by the tracker")
	vidFile := flag.String("v", "", "Video file the track log was produced from")
	saveFile := flag.String("o", "", "Save annotated video to this file, requires -v")
	resFile := flag.String("r", "", "Write per frame results as JSON lines to this file, default stdout")
	region := flag.String("region", "", "Override config region, semicolon separated x,y points eg: \"100,0;100,200\"")
	trailLen := flag.Int("trail", 0, "Number of recent centroids to draw as a trail per object")
	debug := flag.Bool("debug", false, "Log every counted crossing")

	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	if *trackFile == "" {
		log.Fatal("A track log must be given with -t")
	}

	if *saveFile != "" && *vidFile == "" {
		log.Fatal("Saving annotated video with -o requires a video given with -v")
	}

	app, err := NewApp(log, *cfgFile, *labelFile, *trackFile, *region, *trailLen)

	if err != nil {
		log.Fatalf("Error creating counter: %v", err)
	}

	app.vidFile = *vidFile
	app.saveFile = *saveFile

	out, err := openResults(*resFile)

	if err != nil {
		log.Fatalf("Error creating results file: %v", err)
	}

	app.results = tracklog.NewResultWriter(out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if app.vidFile != "" {
		err = app.CountVideo(ctx)
	} else {
		err = app.CountLog(ctx)
	}

	if err != nil {
		log.Errorf("Counting stopped: %v", err)
	}

	if cerr := out.Close(); cerr != nil {
		log.Errorf("Error closing results file: %v", cerr)
		if err == nil {
			err = cerr
		}
	}

	counts := app.session.Counts()

	log.WithFields(logrus.Fields{
		"in":  counts.In(),
		"out": counts.Out(),
	}).Info("final counts")

	for _, class := range counts.Classes() {
		c, _ := counts.Class(class)
		log.WithFields(logrus.Fields{
			"class": class,
			"in":    c.In,
			"out":   c.Out,
		}).Info("class counts")
	}

	if err != nil {
		stop()
		os.Exit(1)
	}
}
