package storage

import (
	"fmt"

	"github.com/NewUserKK/camtrack/corners"
)

// Builder accumulates per-frame corner sets strictly in frame order. It
// is an append-only arena: frame i may only be set once all frames before
// it are set, so the finalized storage can never have gaps, duplicates or
// an implicit ordering step.
type Builder struct {
	arena []corners.FrameCorners
}

func NewBuilder() *Builder {
	return &Builder{}
}

// SetCornersAtFrame records the corner set for the given frame index. The
// index must be exactly the next unset frame.
func (b *Builder) SetCornersAtFrame(frameIndex int, fc corners.FrameCorners) error {
	if frameIndex != len(b.arena) {
		return fmt.Errorf(
			"corner sets must be added in frame order: got frame %d, want %d",
			frameIndex, len(b.arena),
		)
	}
	b.arena = append(b.arena, append(corners.FrameCorners(nil), fc...))
	return nil
}

// Build finalizes the accumulated sets into an immutable storage.
func (b *Builder) Build() (*Storage, error) {
	if len(b.arena) == 0 {
		return nil, fmt.Errorf("no corner sets were added")
	}
	arena := b.arena
	b.arena = nil
	return &Storage{frames: arena}, nil
}

// Storage is the finalized, frame-index-ordered sequence of corner sets,
// one entry per input frame.
type Storage struct {
	frames []corners.FrameCorners
}

func (s *Storage) Len() int {
	return len(s.frames)
}

// At returns a copy of the corner set at the given frame index.
func (s *Storage) At(frameIndex int) corners.FrameCorners {
	if frameIndex < 0 || frameIndex >= len(s.frames) {
		panic(fmt.Sprintf("frame index %d out of range [0, %d)", frameIndex, len(s.frames)))
	}
	return append(corners.FrameCorners(nil), s.frames[frameIndex]...)
}

// MaxID returns the largest corner ID present anywhere in the storage, or
// -1 if every frame is empty.
func (s *Storage) MaxID() int64 {
	maxID := int64(-1)
	for _, fc := range s.frames {
		if id := fc.MaxID(); id > maxID {
			maxID = id
		}
	}
	return maxID
}
