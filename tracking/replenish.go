package tracking

import (
	"github.com/NewUserKK/camtrack/corners"
	"github.com/NewUserKK/camtrack/frames"
)

const (
	ExcludeRadiusDefault  = 10
	ReplenishEveryDefault = 1
)

// Replenisher injects freshly detected corners into regions not covered
// by live tracks, replacing tracks lost to validation failure and
// covering newly exposed parts of the scene.
type Replenisher struct {
	Detector *corners.Detector
	// ExcludeRadius is the half-size of the square masked out around
	// every surviving track before re-detection.
	ExcludeRadius int
	// Every is the replenishment cadence in frames; 1 replenishes on
	// every frame.
	Every int
}

// Replenish returns tracked plus any newly accepted corners. New corners
// receive strictly increasing IDs drawn from nextID in detector output
// order. On frames off the cadence, tracked is returned unchanged.
//
// The exclusion mask lives only inside this call: built fresh, written
// here, read by the detector filter, then dropped.
func (r *Replenisher) Replenish(
	frameIndex int,
	f *frames.Frame,
	tracked corners.FrameCorners,
	nextID *int64,
) corners.FrameCorners {
	every := r.Every
	if every < 1 {
		every = 1
	}
	if frameIndex%every != 0 {
		return tracked
	}

	mask := corners.AllowAll(f.Rows(), f.Cols())
	for _, c := range tracked {
		mask.Exclude(c.X, c.Y, r.ExcludeRadius)
	}

	fresh := r.Detector.Detect(f, mask)

	out := append(corners.FrameCorners(nil), tracked...)
	for _, p := range fresh {
		out = append(out, corners.Corner{
			ID:   *nextID,
			X:    p.X,
			Y:    p.Y,
			Size: r.Detector.Config.BlockSize,
		})
		*nextID++
	}
	return out
}
