package storage

import (
	"testing"

	"github.com/NewUserKK/camtrack/corners"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderEnforcesFrameOrder(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetCornersAtFrame(0, nil))

	assert.Error(t, b.SetCornersAtFrame(0, nil), "repeated index must fail")
	assert.Error(t, b.SetCornersAtFrame(2, nil), "gap must fail")
	require.NoError(t, b.SetCornersAtFrame(1, nil))

	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestBuilderRejectsEmptyBuild(t *testing.T) {
	_, err := NewBuilder().Build()
	require.Error(t, err)
}

func TestStorageAtReturnsCopy(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetCornersAtFrame(0, corners.FrameCorners{
		{ID: 0, X: 1, Y: 2, Size: 9},
	}))
	s, err := b.Build()
	require.NoError(t, err)

	fc := s.At(0)
	fc[0].X = 999
	assert.Equal(t, float32(1), s.At(0)[0].X, "mutating the copy must not touch the storage")
}

func TestStorageAtPanicsOutOfRange(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetCornersAtFrame(0, nil))
	s, err := b.Build()
	require.NoError(t, err)

	assert.Panics(t, func() { s.At(1) })
	assert.Panics(t, func() { s.At(-1) })
}

func TestStorageMaxID(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.SetCornersAtFrame(0, corners.FrameCorners{
		{ID: 0}, {ID: 3},
	}))
	require.NoError(t, b.SetCornersAtFrame(1, corners.FrameCorners{
		{ID: 3}, {ID: 7},
	}))
	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.MaxID())
}
