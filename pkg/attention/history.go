package attention

import (
	"time"

	"github.com/teslashibe/go-attention/pkg/gaze"
)

type gazeSample struct {
	at    time.Time
	label gaze.Label
}

// GazeHistory is the trailing window of per-frame gaze labels used for
// rapid-glance detection.
type GazeHistory struct {
	window  time.Duration
	samples []gazeSample
}

// NewGazeHistory creates an empty history covering window.
func NewGazeHistory(window time.Duration) GazeHistory {
	return GazeHistory{window: window}
}

// Add appends a sample, drops samples older than the window relative to now
// and returns the number of side glances left in the window.
func (h *GazeHistory) Add(now time.Time, label gaze.Label) int {
	h.samples = append(h.samples, gazeSample{at: now, label: label})
	h.Purge(now)
	return h.SideCount()
}

// Purge drops samples older than the window.
func (h *GazeHistory) Purge(now time.Time) {
	kept := h.samples[:0]
	for _, s := range h.samples {
		if now.Sub(s.at) <= h.window {
			kept = append(kept, s)
		}
	}
	h.samples = kept
}

// SideCount counts left and right samples.
func (h *GazeHistory) SideCount() int {
	n := 0
	for _, s := range h.samples {
		if s.label.IsSide() {
			n++
		}
	}
	return n
}

// Reset empties the window.
func (h *GazeHistory) Reset() {
	h.samples = nil
}

// Len is the number of samples currently held.
func (h *GazeHistory) Len() int {
	return len(h.samples)
}
