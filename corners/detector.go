package corners

import (
	"log"
	"os"

	"github.com/NewUserKK/camtrack/frames"
	"gocv.io/x/gocv"
)

const (
	BlockSizeDefault    = 9
	QualityLevelDefault = 0.01
	MergeRadiusDefault  = 10
)

var Debug = false
var logger = log.New(os.Stdout, "[corners] ", log.Lshortfile+log.Ltime)

type Config struct {
	// MaxCorners caps the number of detections per level; 0 means no cap.
	MaxCorners   int
	QualityLevel float64
	BlockSize    int
	MergeRadius  float64
}

func DefaultConfig() Config {
	return Config{
		MaxCorners:   0,
		QualityLevel: QualityLevelDefault,
		BlockSize:    BlockSizeDefault,
		MergeRadius:  MergeRadiusDefault,
	}
}

// MinSeparation is the minimum pixel distance between detections handed
// to the detection primitive, at least 1.5 times the block size.
func (c Config) MinSeparation() float64 {
	return float64(c.BlockSize + c.BlockSize/2)
}

// Detector finds corner candidates on a frame across all pyramid levels.
type Detector struct {
	Config Config
	Dedup  Deduplicator
}

func NewDetector(cfg Config) *Detector {
	return &Detector{
		Config: cfg,
		Dedup:  Deduplicator{Radius: cfg.MergeRadius, Strategy: MergeKeepLast},
	}
}

// DetectSingle runs single-scale detection on one frame. Candidates whose
// pixel falls in a denied mask region are discarded; the detection
// primitive itself takes no mask, so this filter is the enforcement
// point. Zero detections yield an empty slice, not an error.
func (d *Detector) DetectSingle(f *frames.Frame, mask *Mask) []Point {
	prepared := f.Preprocess()
	defer prepared.Close()

	found := gocv.NewMat()
	defer found.Close()
	gocv.GoodFeaturesToTrack(
		prepared.Mat(),
		&found,
		d.Config.MaxCorners,
		d.Config.QualityLevel,
		d.Config.MinSeparation(),
	)

	pts := MatToPoints(found)
	if mask == nil {
		return pts
	}
	var kept []Point
	for _, p := range pts {
		if mask.Allowed(p.X, p.Y) {
			kept = append(kept, p)
		}
	}
	return kept
}

// Detect runs detection on every pyramid level, rescales the results to
// the original resolution, restricts them to the allowed mask region and
// merges near-duplicates. The mask is in full-resolution coordinates.
func (d *Detector) Detect(f *frames.Frame, mask *Mask) []Point {
	pyramid := frames.BuildPyramid(f)
	defer pyramid.Close()
	size := pyramid.Size()

	// Levels are independent, so detection fans out one goroutine per
	// level. The aggregate is concatenated in level order to keep the
	// greedy deduplication pass deterministic.
	perLevel := make([][]Point, size)
	done := make(chan struct{})
	for level := 0; level < size; level++ {
		go func(level int) {
			pts := d.DetectSingle(pyramid.Level(level), nil)
			factor := float32(frames.ScaleFactor(size, level))
			for i := range pts {
				pts[i].X *= factor
				pts[i].Y *= factor
			}
			perLevel[level] = pts
			done <- struct{}{}
		}(level)
	}
	for level := 0; level < size; level++ {
		<-done
	}

	var raw []Point
	for _, pts := range perLevel {
		raw = append(raw, pts...)
	}
	if Debug {
		logger.Printf("detected %d raw candidates on %d levels\n", len(raw), size)
	}

	if mask != nil {
		var allowed []Point
		for _, p := range raw {
			if mask.Allowed(p.X, p.Y) {
				allowed = append(allowed, p)
			}
		}
		raw = allowed
	}
	return d.Dedup.Merge(raw)
}
