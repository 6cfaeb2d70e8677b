package monitor

import (
	"context"
	"fmt"

	"github.com/teslashibe/go-attention/internal/log"
	"github.com/teslashibe/go-attention/pkg/gaze"
	"github.com/teslashibe/go-attention/pkg/landmarks"
)

// Preview shows the per-frame gaze label without any attention tracking.
type Preview[F Frame] struct {
	source     Source[F]
	landmarker Landmarker[F]
	display    Display[F]
	thresholds gaze.Thresholds
}

// NewPreview creates a gaze-only preview loop.
func NewPreview[F Frame](src Source[F], lm Landmarker[F], d Display[F], t gaze.Thresholds) *Preview[F] {
	return &Preview[F]{source: src, landmarker: lm, display: d, thresholds: t}
}

// Label classifies one frame. Frames without a usable face are Unknown.
func (p *Preview[F]) Label(frame F) gaze.Label {
	set, ok, err := p.landmarker.Detect(frame)
	if err != nil {
		log.Warn("landmark detection failed", "error", err)
		return gaze.Unknown
	}
	if !ok {
		return gaze.Unknown
	}

	w, h := frame.Size()
	eyes, err := landmarks.Observe(set, w, h)
	if err != nil {
		return gaze.Unknown
	}
	return p.thresholds.Frame(eyes)
}

// Run loops until cancelled, stopped from the display or out of frames.
func (p *Preview[F]) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		frame, err := p.source.Read()
		if err != nil {
			log.Info("frame stream ended", "error", err)
			return nil
		}

		label := p.Label(frame)
		log.Debug("gaze", "direction", label)

		overlay := []OverlayLine{{Text: fmt.Sprintf("Gaze: %s", label), Color: gazeColor}}
		if p.display.Show(frame, overlay) {
			return nil
		}
	}
	return nil
}
