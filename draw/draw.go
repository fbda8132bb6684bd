package draw

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path"
	"strings"

	"github.com/NewUserKK/camtrack/corners"
	"github.com/NewUserKK/camtrack/frames"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"
	xdraw "golang.org/x/image/draw"
)

const circleThickness = 2

// TrackColor returns a stable color for a track. Consecutive IDs land on
// well-separated hues so neighboring tracks stay distinguishable.
func TrackColor(id int64) color.RGBA {
	hue := float64((id * 47) % 360)
	r, g, b := colorful.Hsv(hue, 0.85, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Overlay renders the corner set on top of the frame, one circle per
// corner in its track color.
func Overlay(f *frames.Frame, fc corners.FrameCorners) (image.Image, error) {
	canvas := gocv.NewMat()
	defer canvas.Close()
	gocv.CvtColor(f.Mat(), &canvas, gocv.ColorGrayToBGR)

	for _, c := range fc {
		radius := c.Size / 2
		if radius < 1 {
			radius = 1
		}
		gocv.Circle(&canvas, image.Pt(int(c.X), int(c.Y)), radius, TrackColor(c.ID), circleThickness)
	}

	img, err := canvas.ToImage()
	if err != nil {
		return nil, fmt.Errorf("overlay to image: %w", err)
	}
	return img, nil
}

// SaveOverlay writes the image as a uuid-suffixed PNG and returns the
// path it was written to.
func SaveOverlay(dir, filename string, img image.Image) (string, error) {
	filename = strings.ReplaceAll(filename, " ", "_")
	filepath := fmt.Sprintf("%s-%s.png", path.Join(dir, filename), uuid.New().String()[:8])
	w, err := os.Create(filepath)
	if err != nil {
		return "", err
	}
	if err := png.Encode(w, img); err != nil {
		_ = w.Close()
		return "", err
	}
	return filepath, w.Close()
}

// Thumbnail scales the image down to the given width, keeping the aspect
// ratio.
func Thumbnail(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= width {
		return img
	}
	height := bounds.Dy() * width / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, img, bounds, xdraw.Over, nil)
	return dst
}
