package corners

import (
	"github.com/bmharper/flatbush-go"
)

// MergeStrategy selects the representative emitted for a group of
// near-duplicate detections.
type MergeStrategy int

const (
	// MergeKeepLast keeps the group member with the highest original
	// index. This is the inherited default and encodes no quality
	// signal; it is an arbitrary tie-break.
	MergeKeepLast MergeStrategy = iota
	// MergeKeepFirst keeps the group member with the lowest original
	// index, i.e. the seed of the greedy pass.
	MergeKeepFirst
	// MergeCentroid emits the mean position of the group.
	MergeCentroid
)

func (s MergeStrategy) String() string {
	return []string{
		"MergeKeepLast",
		"MergeKeepFirst",
		"MergeCentroid",
	}[s]
}

// Deduplicator merges detections that fall within Radius of each other
// under the Manhattan metric.
//
// The pass is greedy in original index order: each unconsumed seed claims
// its whole neighbor group and emits one representative. Because grouping
// is order-dependent rather than a global clustering, two emitted points
// may still lie within Radius of each other; only exact duplicates are
// ruled out.
type Deduplicator struct {
	Radius   float64
	Strategy MergeStrategy
}

// Merge returns one representative per neighbor group.
func (d *Deduplicator) Merge(pts []Point) []Point {
	if len(pts) < 2 {
		return append([]Point(nil), pts...)
	}

	fb := flatbush.NewFlatbush[float32]()
	fb.Reserve(len(pts))
	for _, p := range pts {
		fb.Add(p.X, p.Y, p.X, p.Y)
	}
	fb.Finish()

	radius := float32(d.Radius)
	consumed := make([]bool, len(pts))
	var out []Point
	for i, p := range pts {
		if consumed[i] {
			continue
		}
		// The box query over-approximates the Manhattan ball, so the
		// candidates still need the exact metric check.
		candidates := fb.Search(p.X-radius, p.Y-radius, p.X+radius, p.Y+radius)
		var group []int
		for _, j := range candidates {
			// A point already claimed by an earlier group must not be
			// re-emitted or averaged in again. The seed itself is always
			// unconsumed here, so the group is never empty.
			if consumed[j] || manhattan(p, pts[j]) > radius {
				continue
			}
			group = append(group, j)
		}
		for _, j := range group {
			consumed[j] = true
		}
		out = append(out, d.representative(pts, group))
	}
	return out
}

func (d *Deduplicator) representative(pts []Point, group []int) Point {
	switch d.Strategy {
	case MergeKeepFirst:
		first := group[0]
		for _, j := range group {
			if j < first {
				first = j
			}
		}
		return pts[first]
	case MergeCentroid:
		var sx, sy float32
		for _, j := range group {
			sx += pts[j].X
			sy += pts[j].Y
		}
		n := float32(len(group))
		return Point{X: sx / n, Y: sy / n}
	default:
		last := group[0]
		for _, j := range group {
			if j > last {
				last = j
			}
		}
		return pts[last]
	}
}

func manhattan(a, b Point) float32 {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
