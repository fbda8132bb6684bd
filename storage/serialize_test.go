package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/NewUserKK/camtrack/corners"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpLoadRoundTrip(t *testing.T) {
	s := buildStorage(t,
		corners.FrameCorners{
			{ID: 0, X: 10.5, Y: 20.25, Size: 9},
			{ID: 1, X: 99, Y: 3, Size: 9},
		},
		corners.FrameCorners{}, // frames may be empty
		corners.FrameCorners{
			{ID: 0, X: 11.5, Y: 20, Size: 9},
			{ID: 2, X: 40, Y: 41, Size: 9},
		},
	)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, s))

	loaded, err := Load(&buf)
	require.NoError(t, err)
	require.Equal(t, s.Len(), loaded.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, s.At(i), loaded.At(i), "frame %d", i)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "corners/999\n1\n"},
		{"missing count", "camtrack-corners/1\n"},
		{"bad count", "camtrack-corners/1\nmany\n"},
		{"short line", "camtrack-corners/1\n1\n0 1 2\n"},
		{"frame out of range", "camtrack-corners/1\n1\n5 0 1 2 9\n"},
		{"frames out of order", "camtrack-corners/1\n3\n2 0 1 2 9\n0 1 1 2 9\n"},
	}
	for _, c := range cases {
		if _, err := Load(strings.NewReader(c.input)); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}
