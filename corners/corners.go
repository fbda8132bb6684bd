package corners

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Point is a 2D position in full-resolution frame coordinates.
type Point struct {
	X float32
	Y float32
}

// Corner is a tracked interest point. ID is unique across the whole
// sequence and never reused once the track is lost.
type Corner struct {
	ID   int64
	X    float32
	Y    float32
	Size int
}

func (c Corner) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

func (c Corner) String() string {
	return fmt.Sprintf("<Corner %d (%.1f, %.1f) %d>", c.ID, c.X, c.Y, c.Size)
}

// FrameCorners is the set of corners observed in one frame.
type FrameCorners []Corner

func (fc FrameCorners) IDs() []int64 {
	ids := make([]int64, len(fc))
	for i, c := range fc {
		ids[i] = c.ID
	}
	return ids
}

func (fc FrameCorners) Points() []Point {
	pts := make([]Point, len(fc))
	for i, c := range fc {
		pts[i] = c.Point()
	}
	return pts
}

// MaxID returns the largest ID in the set, or -1 for an empty set.
func (fc FrameCorners) MaxID() int64 {
	maxID := int64(-1)
	for _, c := range fc {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID
}

// PointsToMat packs points into an Nx2 CV32F mat, the layout the optical
// flow primitive accepts for point lists.
func PointsToMat(pts []Point) gocv.Mat {
	mat := gocv.NewMatWithSize(len(pts), 2, gocv.MatTypeCV32F)
	for i, p := range pts {
		mat.SetFloatAt(i, 0, p.X)
		mat.SetFloatAt(i, 1, p.Y)
	}
	return mat
}

// MatToPoints reads a point mat back, accepting both the Nx1 2-channel
// layout the primitives produce and the flat Nx2 layout.
func MatToPoints(mat gocv.Mat) []Point {
	pts := make([]Point, mat.Rows())
	for i := range pts {
		if mat.Channels() == 2 {
			vec := mat.GetVecfAt(i, 0)
			pts[i] = Point{X: vec[0], Y: vec[1]}
		} else {
			pts[i] = Point{X: mat.GetFloatAt(i, 0), Y: mat.GetFloatAt(i, 1)}
		}
	}
	return pts
}
