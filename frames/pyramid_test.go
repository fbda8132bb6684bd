package frames

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestScaleFactor(t *testing.T) {
	cases := []struct {
		size   int
		level  int
		factor int
	}{
		{4, 0, 8},
		{4, 1, 4},
		{4, 2, 2},
		{4, 3, 1},
		{1, 0, 1},
		{2, 0, 2},
	}
	for _, c := range cases {
		if got := ScaleFactor(c.size, c.level); got != c.factor {
			t.Errorf("ScaleFactor(%d, %d) = %d, want %d", c.size, c.level, got, c.factor)
		}
	}
}

func TestBuildPyramidOrdering(t *testing.T) {
	mat := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8U)
	defer mat.Close()
	frame, err := NewFrameFromMat(mat)
	if err != nil {
		t.Fatal(err)
	}

	pyramid := BuildPyramid(frame)
	defer pyramid.Close()

	// 100 -> 50 stays above the 25px threshold, 50 -> 25 does not.
	if pyramid.Size() != 2 {
		t.Fatalf("pyramid size = %d, want 2", pyramid.Size())
	}
	for level := 1; level < pyramid.Size(); level++ {
		coarser := pyramid.Level(level - 1)
		finer := pyramid.Level(level)
		if coarser.Rows() >= finer.Rows() || coarser.Cols() >= finer.Cols() {
			t.Errorf(
				"level %d (%dx%d) not coarser than level %d (%dx%d)",
				level-1, coarser.Cols(), coarser.Rows(),
				level, finer.Cols(), finer.Rows(),
			)
		}
	}

	finest := pyramid.Level(pyramid.Size() - 1)
	if finest.Rows() != frame.Rows() || finest.Cols() != frame.Cols() {
		t.Errorf(
			"finest level is %dx%d, want the original %dx%d",
			finest.Cols(), finest.Rows(), frame.Cols(), frame.Rows(),
		)
	}
}

func TestPyramidCloseTwice(t *testing.T) {
	mat := gocv.NewMatWithSize(100, 100, gocv.MatTypeCV8U)
	defer mat.Close()
	frame, err := NewFrameFromMat(mat)
	if err != nil {
		t.Fatal(err)
	}

	pyramid := BuildPyramid(frame)
	pyramid.Close()
	pyramid.Close()
	if pyramid.Size() != 0 {
		t.Errorf("closed pyramid reports size %d", pyramid.Size())
	}
}

func TestBuildPyramidTinyFrame(t *testing.T) {
	mat := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8U)
	defer mat.Close()
	frame, err := NewFrameFromMat(mat)
	if err != nil {
		t.Fatal(err)
	}

	pyramid := BuildPyramid(frame)
	defer pyramid.Close()

	if pyramid.Size() < 1 {
		t.Fatal("pyramid lost the original frame")
	}
	finest := pyramid.Level(pyramid.Size() - 1)
	if finest.Rows() != 4 || finest.Cols() != 4 {
		t.Errorf("finest level is %dx%d, want 4x4", finest.Cols(), finest.Rows())
	}
}
