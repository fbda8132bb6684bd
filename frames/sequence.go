package frames

import (
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gocv.io/x/gocv"
)

// Sequence provides contiguous, 0-indexed access to the frames of one
// recording. At returns a frame owned by the caller.
type Sequence interface {
	Len() int
	At(i int) (*Frame, error)
}

// VideoSequence decodes a whole video file to grayscale up front.
type VideoSequence struct {
	frames []*Frame
}

func OpenVideoSequence(filename string) (*VideoSequence, error) {
	capture, err := gocv.VideoCaptureFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", filename, err)
	}
	defer capture.Close()

	seq := &VideoSequence{}
	buf := gocv.NewMat()
	defer buf.Close()
	for capture.Read(&buf) {
		if buf.Empty() {
			break
		}
		var gray gocv.Mat
		if buf.Channels() == 1 {
			gray = buf.Clone()
		} else {
			gray = gocv.NewMat()
			gocv.CvtColor(buf, &gray, gocv.ColorBGRToGray)
		}
		seq.frames = append(seq.frames, &Frame{mat: gray})
	}
	if len(seq.frames) == 0 {
		return nil, fmt.Errorf("video %s contains no frames", filename)
	}
	if Debug {
		logger.Printf("decoded %d frames from %s\n", len(seq.frames), filename)
	}
	return seq, nil
}

func (s *VideoSequence) Len() int {
	return len(s.frames)
}

func (s *VideoSequence) At(i int) (*Frame, error) {
	if i < 0 || i >= len(s.frames) {
		return nil, fmt.Errorf("frame index %d out of range [0, %d)", i, len(s.frames))
	}
	return s.frames[i].Clone(), nil
}

func (s *VideoSequence) Close() {
	for _, f := range s.frames {
		f.Close()
	}
	s.frames = nil
}

// DirSequence reads image files from a directory in lexical order, one
// frame per file, decoded lazily on every At call.
type DirSequence struct {
	dir   string
	names []string
}

func OpenDirSequence(dir string) (*DirSequence, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read frame dir %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch strings.ToLower(path.Ext(name)) {
		case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}
	sort.Strings(names)
	return &DirSequence{dir: dir, names: names}, nil
}

func (s *DirSequence) Len() int {
	return len(s.names)
}

func (s *DirSequence) At(i int) (*Frame, error) {
	if i < 0 || i >= len(s.names) {
		return nil, fmt.Errorf("frame index %d out of range [0, %d)", i, len(s.names))
	}
	return ReadFrame(path.Join(s.dir, s.names[i]))
}

// MatSequence wraps pre-built frames, mostly for tests. The sequence
// borrows the frames; At hands out clones.
type MatSequence struct {
	frames []*Frame
}

func NewMatSequence(frames []*Frame) *MatSequence {
	return &MatSequence{frames: frames}
}

func (s *MatSequence) Len() int {
	return len(s.frames)
}

func (s *MatSequence) At(i int) (*Frame, error) {
	if i < 0 || i >= len(s.frames) {
		return nil, fmt.Errorf("frame index %d out of range [0, %d)", i, len(s.frames))
	}
	return s.frames[i].Clone(), nil
}
