package storage

import (
	"gonum.org/v1/gonum/stat"
)

// TrackLengths maps every ID appearing in the storage to the number of
// frames it was observed in.
func TrackLengths(s *Storage) map[int64]int {
	lengths := make(map[int64]int)
	for _, fc := range s.frames {
		for _, c := range fc {
			lengths[c.ID]++
		}
	}
	return lengths
}

type TrackLengthStats struct {
	Tracks int
	Mean   float64
	Std    float64
	Max    int
}

func CalcTrackLengthStats(s *Storage) TrackLengthStats {
	lengths := TrackLengths(s)
	if len(lengths) == 0 {
		return TrackLengthStats{}
	}
	values := make([]float64, 0, len(lengths))
	maxLen := 0
	for _, length := range lengths {
		values = append(values, float64(length))
		if length > maxLen {
			maxLen = length
		}
	}
	return TrackLengthStats{
		Tracks: len(lengths),
		Mean:   stat.Mean(values, nil),
		Std:    stat.StdDev(values, nil),
		Max:    maxLen,
	}
}

// WithoutShortTracks drops every corner whose track spans fewer than
// minLen frames. The frame count and ordering are preserved; frames may
// become empty.
func WithoutShortTracks(s *Storage, minLen int) *Storage {
	lengths := TrackLengths(s)
	builder := NewBuilder()
	for index, fc := range s.frames {
		kept := fc[:0:0]
		for _, c := range fc {
			if lengths[c.ID] >= minLen {
				kept = append(kept, c)
			}
		}
		// The builder is fed strictly in order, so errors are impossible.
		_ = builder.SetCornersAtFrame(index, kept)
	}
	filtered, _ := builder.Build()
	return filtered
}
