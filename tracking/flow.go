package tracking

import (
	"image"

	"github.com/NewUserKK/camtrack/corners"
	"github.com/NewUserKK/camtrack/frames"
	"gocv.io/x/gocv"
)

const (
	FlowWinSizeDefault  = 15
	FlowMaxLevelDefault = 5

	// RoundTripMaxError is the largest forward-backward drift, in pixels
	// and per axis, a track may show and still survive.
	RoundTripMaxError = 1.0
)

// Flow advances corners from one frame to the next with pyramidal
// Lucas-Kanade optical flow and validates every track with a
// forward-backward round trip.
type Flow struct {
	WinSize  image.Point
	MaxLevel int
}

func NewFlow(winSize, maxLevel int) *Flow {
	return &Flow{
		WinSize:  image.Pt(winSize, winSize),
		MaxLevel: maxLevel,
	}
}

// Track returns the corners that survived the move into cur, at their new
// positions and under their old IDs. Corners failing the round-trip check
// are dropped; their IDs are retired by the caller and never reused. An
// empty input returns an empty set without invoking the flow primitive.
//
// The primitive reports its own per-point status, but the round-trip
// check supersedes it, so the status mats are never consulted.
func (f *Flow) Track(prev, cur *frames.Frame, prevCorners corners.FrameCorners) corners.FrameCorners {
	if len(prevCorners) == 0 {
		return nil
	}

	prevPts := corners.PointsToMat(prevCorners.Points())
	defer prevPts.Close()

	forward := gocv.NewMat()
	defer forward.Close()
	forwardStatus := gocv.NewMat()
	defer forwardStatus.Close()
	forwardErr := gocv.NewMat()
	defer forwardErr.Close()
	gocv.CalcOpticalFlowPyrLKWithParams(
		prev.Mat(), cur.Mat(),
		prevPts, forward,
		&forwardStatus, &forwardErr,
		f.WinSize, f.MaxLevel,
	)

	backward := gocv.NewMat()
	defer backward.Close()
	backwardStatus := gocv.NewMat()
	defer backwardStatus.Close()
	backwardErr := gocv.NewMat()
	defer backwardErr.Close()
	gocv.CalcOpticalFlowPyrLKWithParams(
		cur.Mat(), prev.Mat(),
		forward, backward,
		&backwardStatus, &backwardErr,
		f.WinSize, f.MaxLevel,
	)

	estimated := corners.MatToPoints(forward)
	roundTrip := corners.MatToPoints(backward)

	var survived corners.FrameCorners
	for i, c := range prevCorners {
		drift := maxAbs(c.X-roundTrip[i].X, c.Y-roundTrip[i].Y)
		if float64(drift) >= RoundTripMaxError {
			continue
		}
		survived = append(survived, corners.Corner{
			ID:   c.ID,
			X:    estimated[i].X,
			Y:    estimated[i].Y,
			Size: c.Size,
		})
	}
	return survived
}

func maxAbs(a, b float32) float32 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
