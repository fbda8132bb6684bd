package frames

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocv.io/x/gocv"
)

const (
	SmoothKernelSize = 7
	SharpenWeight    = 1.5
)

var Debug = false
var logger = log.New(os.Stdout, "[frames] ", log.Lshortfile+log.Ltime)

// Frame is a single-channel image taking part in corner tracking.
type Frame struct {
	mat gocv.Mat
}

func NewFrameFromMat(mat gocv.Mat) (*Frame, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("frame mat is empty")
	}
	if mat.Channels() != 1 {
		return nil, fmt.Errorf("frame mat has %d channels, want 1", mat.Channels())
	}
	return &Frame{mat: mat}, nil
}

func ReadFrame(filename string) (*Frame, error) {
	mat := gocv.IMRead(filename, gocv.IMReadGrayScale)
	if mat.Empty() {
		return nil, fmt.Errorf("could not read frame from %s", filename)
	}
	if Debug {
		logger.Printf("read frame from %s: %dx%d\n", filename, mat.Cols(), mat.Rows())
	}
	return &Frame{mat: mat}, nil
}

func (f *Frame) Mat() gocv.Mat {
	return f.mat
}

func (f *Frame) Rows() int {
	return f.mat.Rows()
}

func (f *Frame) Cols() int {
	return f.mat.Cols()
}

func (f *Frame) Empty() bool {
	return f.mat.Empty()
}

func (f *Frame) Clone() *Frame {
	return &Frame{mat: f.mat.Clone()}
}

func (f *Frame) Close() {
	_ = f.mat.Close()
}

// Preprocess returns a smoothed and sharpened copy suitable for corner
// detection. The receiver is left untouched.
func (f *Frame) Preprocess() *Frame {
	smoothed := gocv.NewMat()
	gocv.GaussianBlur(
		f.mat,
		&smoothed,
		image.Pt(SmoothKernelSize, SmoothKernelSize),
		0,
		0,
		gocv.BorderDefault,
	)

	sharpened := gocv.NewMat()
	gocv.AddWeighted(f.mat, SharpenWeight, smoothed, 1.0-SharpenWeight, 0, &sharpened)
	_ = smoothed.Close()

	return &Frame{mat: sharpened}
}

// Downsample returns a copy with halved linear dimensions.
func (f *Frame) Downsample() *Frame {
	dst := gocv.NewMat()
	gocv.PyrDown(f.mat, &dst)
	return &Frame{mat: dst}
}

func (f *Frame) ColorModel() color.Model {
	return color.GrayModel
}

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.mat.Cols(), f.mat.Rows())
}

func (f *Frame) At(x, y int) color.Color {
	return color.Gray{Y: f.mat.GetUCharAt(y, x)}
}

func (f *Frame) Save(dir, filename string) string {
	filename = strings.ReplaceAll(filename, " ", "_")
	filepath := fmt.Sprintf("%s-%s.png", path.Join(dir, filename), uuid.New().String()[:8])
	w, err := os.Create(filepath)
	if err != nil {
		log.Println(err)
		return filepath
	}
	if err := png.Encode(w, f); err != nil {
		_ = w.Close()
		log.Println(err)
		return filepath
	}
	if err := w.Close(); err != nil {
		log.Println(err)
	}
	if Debug {
		logger.Printf("saved frame %s as %s", f, w.Name())
	}
	return filepath
}

func (f *Frame) String() string {
	return fmt.Sprintf("<Frame %dx%d>", f.Cols(), f.Rows())
}
