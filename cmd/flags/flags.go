package flags

import (
	"flag"

	"github.com/NewUserKK/camtrack/corners"
	"github.com/NewUserKK/camtrack/tracking"
)

const (
	MaxCornersDefault    = 0
	QualityDefault       = corners.QualityLevelDefault
	BlockSizeDefault     = corners.BlockSizeDefault
	MergeRadiusDefault   = corners.MergeRadiusDefault
	ExcludeRadiusDefault = tracking.ExcludeRadiusDefault
	CadenceDefault       = tracking.ReplenishEveryDefault
	WinSizeDefault       = tracking.FlowWinSizeDefault
	MaxFlowLevelDefault  = tracking.FlowMaxLevelDefault
	MinTrackLenDefault   = 0
)

var (
	MaxCorners = flag.Int("max-corners", MaxCornersDefault,
		"detection cap per pyramid level, 0 for no cap")
	Quality       = flag.Float64("quality", QualityDefault, "corner quality threshold")
	BlockSize     = flag.Int("block-size", BlockSizeDefault, "corner detection block size")
	MergeRadius   = flag.Float64("merge-radius", MergeRadiusDefault, "deduplication merge radius in px")
	ExcludeRadius = flag.Int("exclude-radius", ExcludeRadiusDefault,
		"replenishment exclusion radius around live tracks in px")
	Cadence = flag.Int("cadence", CadenceDefault,
		"frames between replenishment attempts, 1 for every frame")
	WinSize      = flag.Int("win-size", WinSizeDefault, "optical flow window size")
	MaxFlowLevel = flag.Int("max-flow-level", MaxFlowLevelDefault, "optical flow pyramid depth")
	MinTrackLen  = flag.Int("min-track-len", MinTrackLenDefault,
		"drop tracks shorter than this many frames, 0 keeps all")
	verbose  = flag.Bool("v", false, "print basic messages")
	VVerbose = flag.Bool("vv", false, "print additional execution messages")
)

func Verbose() bool {
	return *verbose || *VVerbose
}

func TrackerConfig() tracking.Config {
	return tracking.Config{
		Detector: corners.Config{
			MaxCorners:   *MaxCorners,
			QualityLevel: *Quality,
			BlockSize:    *BlockSize,
			MergeRadius:  *MergeRadius,
		},
		FlowWinSize:    *WinSize,
		FlowMaxLevel:   *MaxFlowLevel,
		ExcludeRadius:  *ExcludeRadius,
		ReplenishEvery: *Cadence,
	}
}
