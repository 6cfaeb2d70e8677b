// Package monitor runs the frame loop: read a frame, extract landmarks,
// classify gaze, evaluate attention, emit alerts and show the annotated
// frame. One frame is fully processed before the next is read.
package monitor

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/teslashibe/go-attention/internal/log"
	"github.com/teslashibe/go-attention/pkg/alert"
	"github.com/teslashibe/go-attention/pkg/attention"
	"github.com/teslashibe/go-attention/pkg/debug"
	"github.com/teslashibe/go-attention/pkg/gaze"
	"github.com/teslashibe/go-attention/pkg/landmarks"
)

// Frame is an image with known pixel dimensions.
type Frame interface {
	Size() (width, height int)
}

// Source yields frames. Any error ends the stream.
type Source[F Frame] interface {
	Read() (F, error)
}

// Landmarker returns the landmark set of the face in a frame, or false when
// there is none.
type Landmarker[F Frame] interface {
	Detect(frame F) (landmarks.Set, bool, error)
}

// Display renders a frame with overlay text and reports whether the user
// asked to stop.
type Display[F Frame] interface {
	Show(frame F, overlay []OverlayLine) bool
}

// OverlayLine is one line of text drawn onto a displayed frame.
type OverlayLine struct {
	Text  string
	Color color.RGBA
}

var (
	gazeColor      = color.RGBA{0, 255, 0, 0}
	blinkColor     = color.RGBA{255, 0, 255, 0}
	attentionColor = color.RGBA{255, 200, 0, 0}
)

// Summary describes a finished session.
type Summary struct {
	ID         uuid.UUID
	Frames     int
	Duration   time.Duration
	BlinkTotal int
	Score      int
	Emitted    int
	Suppressed int
}

// Session monitors one person for the lifetime of the process.
type Session[F Frame] struct {
	ID uuid.UUID

	source     Source[F]
	landmarker Landmarker[F]
	display    Display[F] // nil when headless
	thresholds gaze.Thresholds
	engine     *attention.Engine
	state      *attention.State
	alerts     *alert.Logger
	clock      func() time.Time

	started time.Time
	frames  int
	last    gaze.Label
}

// Option configures a Session.
type Option[F Frame] func(*Session[F])

// WithDisplay shows annotated frames and lets the display stop the session.
func WithDisplay[F Frame](d Display[F]) Option[F] {
	return func(s *Session[F]) { s.display = d }
}

// WithClock replaces the wall clock used to timestamp frames.
func WithClock[F Frame](c func() time.Time) Option[F] {
	return func(s *Session[F]) { s.clock = c }
}

// WithThresholds overrides the gaze ratio band.
func WithThresholds[F Frame](t gaze.Thresholds) Option[F] {
	return func(s *Session[F]) { s.thresholds = t }
}

// NewSession wires a session together. The attention state is created here
// and owned by the session.
func NewSession[F Frame](src Source[F], lm Landmarker[F], engine *attention.Engine, alerts *alert.Logger, opts ...Option[F]) *Session[F] {
	s := &Session[F]{
		ID:         uuid.New(),
		source:     src,
		landmarker: lm,
		thresholds: gaze.DefaultThresholds(),
		engine:     engine,
		state:      engine.NewState(),
		alerts:     alerts,
		clock:      time.Now,
		last:       gaze.Unknown,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State exposes the session's attention state for reading.
func (s *Session[F]) State() *attention.State {
	return s.state
}

// Run processes frames until the context is cancelled, the display asks to
// stop or the source stops delivering frames. A failed read is the normal
// end of a stream and is not returned as an error.
func (s *Session[F]) Run(ctx context.Context) error {
	logger := log.With("session", s.ID.String())
	s.started = s.clock()
	logger.Info("monitoring started")

	for {
		if err := ctx.Err(); err != nil {
			logger.Info("monitoring cancelled")
			return nil
		}

		frame, err := s.source.Read()
		if err != nil {
			logger.Info("frame stream ended", "error", err)
			return nil
		}

		s.Step(frame)

		if s.display != nil && s.display.Show(frame, s.Overlay()) {
			logger.Info("stop requested from display")
			return nil
		}
	}
}

// Step evaluates one frame and emits its alerts through the rate limiter.
// It returns every alert the engine produced, emitted or not.
func (s *Session[F]) Step(frame F) []attention.AlertEvent {
	obs := s.Observe(frame)
	s.frames++
	s.last = obs.Gaze

	events := s.engine.Evaluate(s.state, obs)
	for _, ev := range events {
		s.alerts.LogAt(ev.FiredAt, ev.Reason)
	}
	return events
}

// Observe turns a frame into a FrameObservation timestamped now.
// Landmark failures are logged and treated as an absent face.
func (s *Session[F]) Observe(frame F) attention.FrameObservation {
	now := s.clock()

	set, ok, err := s.landmarker.Detect(frame)
	if err != nil {
		log.Warn("landmark detection failed", "error", err)
		return attention.Absent(now)
	}
	if !ok {
		return attention.Absent(now)
	}

	w, h := frame.Size()
	eyes, err := landmarks.Observe(set, w, h)
	if err != nil {
		log.Warn("landmark set rejected", "error", err)
		return attention.Absent(now)
	}

	debug.FrameLog("Left Eye: %v Right Eye: %v Left Iris: %v Right Iris: %v\n",
		eyes.Left.Corners, eyes.Right.Corners, eyes.Left.Iris, eyes.Right.Iris)

	return attention.FrameObservation{
		FaceVisible: true,
		Gaze:        s.thresholds.Frame(eyes),
		LeftEAR:     earOrNaN(eyes.Left),
		RightEAR:    earOrNaN(eyes.Right),
		Timestamp:   now,
	}
}

func earOrNaN(e landmarks.Eye) float64 {
	if ear, ok := e.EAR(); ok {
		return ear
	}
	return math.NaN()
}

// Overlay returns the text drawn on the current frame.
func (s *Session[F]) Overlay() []OverlayLine {
	return []OverlayLine{
		{Text: fmt.Sprintf("Gaze: %s", s.last), Color: gazeColor},
		{Text: fmt.Sprintf("Blinks: %d", s.state.BlinkTotal()), Color: blinkColor},
		{Text: fmt.Sprintf("Attention: %d", s.state.Score()), Color: attentionColor},
	}
}

// Summary reports on the session so far.
func (s *Session[F]) Summary() Summary {
	var d time.Duration
	if !s.started.IsZero() {
		d = s.clock().Sub(s.started)
	}
	return Summary{
		ID:         s.ID,
		Frames:     s.frames,
		Duration:   d,
		BlinkTotal: s.state.BlinkTotal(),
		Score:      s.state.Score(),
		Emitted:    s.alerts.Emitted(),
		Suppressed: s.alerts.Suppressed(),
	}
}
