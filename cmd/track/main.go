package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/NewUserKK/camtrack/cmd/flags"
	"github.com/NewUserKK/camtrack/corners"
	"github.com/NewUserKK/camtrack/frames"
	"github.com/NewUserKK/camtrack/storage"
	"github.com/NewUserKK/camtrack/tracking"
)

var (
	videoPath  string
	dirPath    string
	outPath    string
	noProgress bool
)

// stderrProgress renders a one-line counter, one tick per emitted frame.
type stderrProgress struct {
	done  int
	total int
}

func (p *stderrProgress) Update(n int) {
	p.done += n
	fmt.Fprintf(os.Stderr, "\rcalculating corners %d/%d", p.done, p.total)
	if p.done >= p.total {
		fmt.Fprintln(os.Stderr)
	}
}

func openSequence() (frames.Sequence, error) {
	switch {
	case videoPath != "" && dirPath != "":
		return nil, fmt.Errorf("use either -video or -dir, not both")
	case videoPath != "":
		return frames.OpenVideoSequence(videoPath)
	case dirPath != "":
		return frames.OpenDirSequence(dirPath)
	default:
		return nil, fmt.Errorf("one of -video or -dir is required")
	}
}

func main() {
	flag.StringVar(&videoPath, "video", "", "video file to track corners in")
	flag.StringVar(&dirPath, "dir", "", "directory of frame images to track corners in")
	flag.StringVar(&outPath, "out", "corners.txt", "output corner storage file")
	flag.BoolVar(&noProgress, "no-progress", false, "disable the progress counter")
	flag.Parse()

	corners.Debug = *flags.VVerbose
	frames.Debug = *flags.VVerbose
	tracking.Debug = *flags.VVerbose

	seq, err := openSequence()
	if err != nil {
		log.Fatal(err)
	}
	if flags.Verbose() {
		log.Printf("tracking %d frames", seq.Len())
	}

	var progress tracking.Progress = tracking.NopProgress{}
	if !noProgress {
		progress = &stderrProgress{total: seq.Len()}
	}

	builder := storage.NewBuilder()
	tracker := tracking.NewTracker(flags.TrackerConfig())
	if err := tracker.Build(seq, builder, progress); err != nil {
		log.Fatal(err)
	}

	result, err := builder.Build()
	if err != nil {
		log.Fatal(err)
	}
	if *flags.MinTrackLen > 0 {
		result = storage.WithoutShortTracks(result, *flags.MinTrackLen)
	}

	out, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := storage.Dump(out, result); err != nil {
		_ = out.Close()
		log.Fatal(err)
	}
	if err := out.Close(); err != nil {
		log.Fatal(err)
	}
	if flags.Verbose() {
		stats := storage.CalcTrackLengthStats(result)
		log.Printf(
			"%d frames, %d tracks, mean length %.2f, max length %d",
			result.Len(), stats.Tracks, stats.Mean, stats.Max,
		)
	}
}
