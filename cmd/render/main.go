package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/NewUserKK/camtrack/cmd/flags"
	"github.com/NewUserKK/camtrack/draw"
	"github.com/NewUserKK/camtrack/frames"
	"github.com/NewUserKK/camtrack/storage"
)

var (
	inPath    string
	videoPath string
	dirPath   string
	outDir    string
	thumbs    int
)

func openSequence() (frames.Sequence, error) {
	switch {
	case videoPath != "":
		return frames.OpenVideoSequence(videoPath)
	case dirPath != "":
		return frames.OpenDirSequence(dirPath)
	default:
		return nil, fmt.Errorf("one of -video or -dir is required")
	}
}

func main() {
	flag.StringVar(&inPath, "in", "corners.txt", "corner storage file to render")
	flag.StringVar(&videoPath, "video", "", "video the corners were tracked in")
	flag.StringVar(&dirPath, "dir", "", "frame directory the corners were tracked in")
	flag.StringVar(&outDir, "out", "overlays", "output directory for overlay images")
	flag.IntVar(&thumbs, "thumb-width", 0, "downscale overlays to this width, 0 keeps full size")
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

	seq, err := openSequence()
	if err != nil {
		log.Fatal(err)
	}
	if seq.Len() != stored.Len() {
		log.Fatalf("sequence has %d frames but storage has %d", seq.Len(), stored.Len())
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	for index := 0; index < stored.Len(); index++ {
		frame, err := seq.At(index)
		if err != nil {
			log.Fatal(err)
		}
		img, err := draw.Overlay(frame, stored.At(index))
		frame.Close()
		if err != nil {
			log.Fatal(err)
		}
		if thumbs > 0 {
			img = draw.Thumbnail(img, thumbs)
		}
		saved, err := draw.SaveOverlay(outDir, fmt.Sprintf("frame%05d", index), img)
		if err != nil {
			log.Fatal(err)
		}
		if flags.Verbose() {
			log.Printf("wrote %s", saved)
		}
	}
}
