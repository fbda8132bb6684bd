package frames

// PyramidMinSizeThreshold stops the halving chain: a level is kept only
// while both of its dimensions stay strictly above this fraction of the
// original min(height, width).
const PyramidMinSizeThreshold = 0.25

// Pyramid is a multi-resolution stack of one frame, ordered from the
// coarsest (smallest) level to the finest (the original frame).
type Pyramid struct {
	levels []*Frame
}

// BuildPyramid repeatedly halves the frame until the next level would fall
// at or below the size threshold. The finest level borrows the original
// frame; all coarser levels are owned by the pyramid.
func BuildPyramid(f *Frame) *Pyramid {
	threshold := int(float64(min(f.Rows(), f.Cols())) * PyramidMinSizeThreshold)

	levels := []*Frame{f}
	diminished := f.Downsample()
	for diminished.Rows() > threshold && diminished.Cols() > threshold {
		levels = append(levels, diminished)
		diminished = diminished.Downsample()
	}
	diminished.Close()

	// Collected finest-first; store coarsest-first.
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}
	return &Pyramid{levels: levels}
}

func (p *Pyramid) Size() int {
	return len(p.levels)
}

// Level returns the frame at the given level, 0 being the coarsest and
// Size()-1 the finest (original resolution).
func (p *Pyramid) Level(i int) *Frame {
	return p.levels[i]
}

// Close releases every level the pyramid owns. The finest level is the
// caller's frame and stays open. Closing twice is a no-op.
func (p *Pyramid) Close() {
	if len(p.levels) == 0 {
		return
	}
	for _, level := range p.levels[:len(p.levels)-1] {
		level.Close()
	}
	p.levels = nil
}

// ScaleFactor maps coordinates detected at the given level back to the
// original resolution: 2^(size-level-1).
func ScaleFactor(size, level int) int {
	return 1 << (size - level - 1)
}
