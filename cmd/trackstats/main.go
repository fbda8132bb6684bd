package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/NewUserKK/camtrack/storage"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	inPath   string
	plotPath string
	bins     int
)

func plotHistogram(lengths map[int64]int, filename string) error {
	values := make(plotter.Values, 0, len(lengths))
	for _, length := range lengths {
		values = append(values, float64(length))
	}

	p := plot.New()
	p.Title.Text = "Track lengths"
	p.X.Label.Text = "frames"
	p.Y.Label.Text = "tracks"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

func main() {
	flag.StringVar(&inPath, "in", "corners.txt", "corner storage file to analyze")
	flag.StringVar(&plotPath, "plot", "", "write a track length histogram PNG to this path")
	flag.IntVar(&bins, "bins", 16, "histogram bin count")
	flag.Parse()

	in, err := os.Open(inPath)
	if err != nil {
		log.Fatal(err)
	}
	stored, err := storage.Load(in)
	_ = in.Close()
	if err != nil {
		log.Fatal(err)
	}

	stats := storage.CalcTrackLengthStats(stored)
	fmt.Printf(
		"%d\tframes\n%d\ttracks\n%d\tmax id\n%.3f\tmean track length\n%.3f\tstd track length\n%d\tmax track length\n",
		stored.Len(),
		stats.Tracks,
		stored.MaxID(),
		stats.Mean,
		stats.Std,
		stats.Max,
	)

	if plotPath != "" {
		if err := plotHistogram(storage.TrackLengths(stored), plotPath); err != nil {
			log.Fatal(err)
		}
	}
}
