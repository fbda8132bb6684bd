package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NewUserKK/camtrack/corners"
)

const dumpHeader = "camtrack-corners/1"

// Dump writes the storage as a line-oriented text table: a header, the
// frame count, then one "frame id x y size" line per corner in frame
// order. The format is meant for the downstream structure-recovery
// pipeline and for Load.
func Dump(w io.Writer, s *Storage) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d\n", dumpHeader, s.Len())
	for index, fc := range s.frames {
		for _, c := range fc {
			fmt.Fprintf(bw, "%d %d %g %g %d\n", index, c.ID, c.X, c.Y, c.Size)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dump corners: %w", err)
	}
	return nil
}

// Load reads a storage dump produced by Dump, validating the header and
// the frame ordering.
func Load(r io.Reader) (*Storage, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("load corners: empty input")
	}
	if header := strings.TrimSpace(scanner.Text()); header != dumpHeader {
		return nil, fmt.Errorf("load corners: unexpected header %q", header)
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("load corners: missing frame count")
	}
	total, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || total <= 0 {
		return nil, fmt.Errorf("load corners: bad frame count %q", scanner.Text())
	}

	arena := make([]corners.FrameCorners, total)
	lastFrame := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 5 {
			return nil, fmt.Errorf("load corners: bad line %q", line)
		}
		frame, err := strconv.Atoi(fields[0])
		if err != nil || frame < 0 || frame >= total {
			return nil, fmt.Errorf("load corners: bad frame index %q", fields[0])
		}
		if frame < lastFrame {
			return nil, fmt.Errorf("load corners: frame %d after frame %d", frame, lastFrame)
		}
		lastFrame = frame

		id, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("load corners: bad id %q", fields[1])
		}
		x, errX := strconv.ParseFloat(fields[2], 32)
		y, errY := strconv.ParseFloat(fields[3], 32)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("load corners: bad position in %q", line)
		}
		size, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("load corners: bad size %q", fields[4])
		}
		arena[frame] = append(arena[frame], corners.Corner{
			ID:   id,
			X:    float32(x),
			Y:    float32(y),
			Size: size,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load corners: %w", err)
	}
	return &Storage{frames: arena}, nil
}
