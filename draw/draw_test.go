package draw

import (
	"image"
	"testing"
)

func TestTrackColorIsStable(t *testing.T) {
	if TrackColor(5) != TrackColor(5) {
		t.Error("same id produced different colors")
	}
	if TrackColor(0) == TrackColor(1) {
		t.Error("adjacent ids produced identical colors")
	}
}

func TestThumbnailKeepsAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 200))
	small := Thumbnail(src, 100)
	bounds := small.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 50 {
		t.Errorf("thumbnail is %dx%d, want 100x50", bounds.Dx(), bounds.Dy())
	}

	if got := Thumbnail(src, 800); got != src {
		t.Error("upscaling request should return the original image")
	}
}
