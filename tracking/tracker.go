package tracking

import (
	"fmt"
	"log"
	"os"

	"github.com/NewUserKK/camtrack/corners"
	"github.com/NewUserKK/camtrack/frames"
	"github.com/NewUserKK/camtrack/storage"
)

var Debug = false
var logger = log.New(os.Stdout, "[tracking] ", log.Lshortfile+log.Ltime)

type Config struct {
	Detector      corners.Config
	FlowWinSize   int
	FlowMaxLevel  int
	ExcludeRadius int
	// ReplenishEvery is the number of frames between replenishment
	// attempts; 1 means every frame.
	ReplenishEvery int
}

func DefaultConfig() Config {
	return Config{
		Detector:       corners.DefaultConfig(),
		FlowWinSize:    FlowWinSizeDefault,
		FlowMaxLevel:   FlowMaxLevelDefault,
		ExcludeRadius:  ExcludeRadiusDefault,
		ReplenishEvery: ReplenishEveryDefault,
	}
}

// flowTracker is what the orchestrator needs from the optical-flow step.
type flowTracker interface {
	Track(prev, cur *frames.Frame, prevCorners corners.FrameCorners) corners.FrameCorners
}

// Tracker drives the per-frame loop: initial detection on frame 0, then
// track-and-replenish for every later frame, emitting exactly one corner
// set per frame index in increasing order.
type Tracker struct {
	detector    *corners.Detector
	flow        flowTracker
	replenisher *Replenisher
	nextID      int64
}

func NewTracker(cfg Config) *Tracker {
	detector := corners.NewDetector(cfg.Detector)
	every := cfg.ReplenishEvery
	if every < 1 {
		every = 1
	}
	return &Tracker{
		detector: detector,
		flow:     NewFlow(cfg.FlowWinSize, cfg.FlowMaxLevel),
		replenisher: &Replenisher{
			Detector:      detector,
			ExcludeRadius: cfg.ExcludeRadius,
			Every:         every,
		},
	}
}

// Build tracks corners across the whole sequence, handing every frame's
// corner set to the builder and reporting one progress update per frame.
//
// An empty sequence or a mid-sequence dimension change aborts the run
// before the builder is finalized. Frames with zero detections or zero
// surviving tracks emit empty corner sets and are not errors.
func (t *Tracker) Build(seq frames.Sequence, builder *storage.Builder, progress Progress) error {
	if progress == nil {
		progress = NopProgress{}
	}
	total := seq.Len()
	if total == 0 {
		return fmt.Errorf("frame sequence is empty")
	}

	prev, err := seq.At(0)
	if err != nil {
		return fmt.Errorf("frame 0: %w", err)
	}
	rows, cols := prev.Rows(), prev.Cols()

	prevCorners := t.initialCorners(prev)
	if err := builder.SetCornersAtFrame(0, prevCorners); err != nil {
		prev.Close()
		return err
	}
	progress.Update(1)

	for index := 1; index < total; index++ {
		cur, err := seq.At(index)
		if err != nil {
			prev.Close()
			return fmt.Errorf("frame %d: %w", index, err)
		}
		if cur.Rows() != rows || cur.Cols() != cols {
			err := fmt.Errorf(
				"frame %d is %dx%d, want %dx%d as in frame 0",
				index, cur.Cols(), cur.Rows(), cols, rows,
			)
			cur.Close()
			prev.Close()
			return err
		}

		tracked := t.flow.Track(prev, cur, prevCorners)
		merged := t.replenisher.Replenish(index, cur, tracked, &t.nextID)
		if Debug {
			logger.Printf(
				"frame %d: %d tracked, %d after replenishment\n",
				index, len(tracked), len(merged),
			)
		}

		if err := builder.SetCornersAtFrame(index, merged); err != nil {
			cur.Close()
			prev.Close()
			return err
		}
		progress.Update(1)

		prev.Close()
		prev = cur
		prevCorners = merged
	}
	prev.Close()
	return nil
}

// initialCorners detects on frame 0 and issues IDs 0..k-1 in detector
// output order.
func (t *Tracker) initialCorners(f *frames.Frame) corners.FrameCorners {
	pts := t.detector.Detect(f, nil)
	fc := make(corners.FrameCorners, 0, len(pts))
	for _, p := range pts {
		fc = append(fc, corners.Corner{
			ID:   t.nextID,
			X:    p.X,
			Y:    p.Y,
			Size: t.detector.Config.BlockSize,
		})
		t.nextID++
	}
	return fc
}
