package attention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teslashibe/go-attention/pkg/gaze"
)

func TestGazeHistory_CountsOnlySideGlances(t *testing.T) {
	h := NewGazeHistory(10 * time.Second)

	labels := []gaze.Label{gaze.Left, gaze.Center, gaze.Right, gaze.Moving, gaze.Unknown, gaze.Left}
	var n int
	for i, l := range labels {
		n = h.Add(at(time.Duration(i)*time.Second), l)
	}

	assert.Equal(t, 3, n)
	assert.Equal(t, len(labels), h.Len())
}

func TestGazeHistory_PurgesOldSamples(t *testing.T) {
	h := NewGazeHistory(10 * time.Second)

	h.Add(at(0), gaze.Left)
	h.Add(at(1*time.Second), gaze.Right)
	h.Add(at(10*time.Second), gaze.Left) // first sample exactly at window edge, kept
	assert.Equal(t, 3, h.Len())

	n := h.Add(at(10500*time.Millisecond), gaze.Center)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, h.Len())

	h.Purge(at(30 * time.Second))
	assert.Equal(t, 0, h.Len())
}

func TestGazeHistory_Reset(t *testing.T) {
	h := NewGazeHistory(10 * time.Second)
	h.Add(at(0), gaze.Left)
	h.Add(at(time.Second), gaze.Right)

	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 1, h.Add(at(2*time.Second), gaze.Left))
}
