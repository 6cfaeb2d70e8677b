// Package attention implements the per-frame attention state machine: face
// visibility and look-away timers, rapid side-glance detection over a
// trailing window, blink detection and the cumulative attention score.
//
// All temporal state lives in a State value owned by the caller. The Engine
// holds only configuration, so one Engine can evaluate any number of
// independent sessions.
package attention

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/teslashibe/go-attention/pkg/gaze"
)

// Kind identifies the condition behind an alert.
type Kind string

const (
	FaceNotVisible Kind = "face_not_visible"
	LookingAway    Kind = "looking_away"
	RapidGlance    Kind = "rapid_glance"
	Blink          Kind = "blink"
)

// AlertEvent is a condition that fired during one evaluation step.
type AlertEvent struct {
	Kind    Kind
	Reason  string
	FiredAt time.Time
}

// FrameObservation is the input of one evaluation step.
// EAR values are NaN when they could not be measured.
type FrameObservation struct {
	FaceVisible bool
	Gaze        gaze.Label
	LeftEAR     float64
	RightEAR    float64
	Timestamp   time.Time
}

// EARMeasured reports whether both EAR values are usable.
func (o FrameObservation) EARMeasured() bool {
	return !math.IsNaN(o.LeftEAR) && !math.IsNaN(o.RightEAR)
}

// Absent returns the observation for a frame without a detected face.
func Absent(now time.Time) FrameObservation {
	return FrameObservation{
		FaceVisible: false,
		Gaze:        gaze.Unknown,
		LeftEAR:     math.NaN(),
		RightEAR:    math.NaN(),
		Timestamp:   now,
	}
}

// State is the mutable attention record of one session.
type State struct {
	visibility RepeatTimer
	lookAway   RepeatTimer
	history    GazeHistory
	blink      BlinkDetector
	score      int
}

// Score is the cumulative attention score. It never increases.
func (s *State) Score() int { return s.score }

// BlinkTotal is the number of blinks counted.
func (s *State) BlinkTotal() int { return s.blink.Total() }

// BlinkRun is the current consecutive low-EAR frame count.
func (s *State) BlinkRun() int { return s.blink.Run() }

// FaceNotVisibleSince returns when the current absence interval started.
func (s *State) FaceNotVisibleSince() (time.Time, bool) { return s.visibility.Since() }

// LookAwaySince returns when the current look-away interval started.
func (s *State) LookAwaySince() (time.Time, bool) { return s.lookAway.Since() }

// HistoryLen is the number of gaze samples in the window.
func (s *State) HistoryLen() int { return s.history.Len() }

// Snapshot is a read-only copy of the state for display and reporting.
type Snapshot struct {
	Score      int
	BlinkTotal int
	Visibility TimerState
	LookAway   TimerState
	Blink      BlinkState
	History    int
}

// Snapshot copies the observable state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Score:      s.score,
		BlinkTotal: s.blink.Total(),
		Visibility: s.visibility.State(),
		LookAway:   s.lookAway.State(),
		Blink:      s.blink.State(),
		History:    s.history.Len(),
	}
}

// Engine evaluates frame observations against a configuration.
type Engine struct {
	cfg Config
}

// NewEngine creates an engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewState creates the state for a new session.
func (e *Engine) NewState() *State {
	return &State{
		visibility: NewRepeatTimer(e.cfg.FaceNotVisibleThreshold),
		lookAway:   NewRepeatTimer(e.cfg.LookAwayThreshold),
		history:    NewGazeHistory(e.cfg.GazeHistoryWindow),
		blink:      NewBlinkDetector(e.cfg.BlinkEARThreshold, e.cfg.BlinkConsecFrames),
		score:      e.cfg.InitialScore,
	}
}

// Evaluate runs the four checks in order (visibility, look-away, rapid
// glance, blink) and returns every alert that fired. Penalties are applied
// to s whether or not the alert is later emitted.
func (e *Engine) Evaluate(s *State, obs FrameObservation) []AlertEvent {
	var alerts []AlertEvent
	now := obs.Timestamp

	fire := func(kind Kind, reason string, penalty int) {
		s.score -= penalty
		alerts = append(alerts, AlertEvent{Kind: kind, Reason: reason, FiredAt: now})
	}

	// 1. Face visibility
	if s.visibility.Observe(!obs.FaceVisible, now) {
		fire(FaceNotVisible,
			fmt.Sprintf("Face not visible for %s seconds", seconds(e.cfg.FaceNotVisibleThreshold)),
			e.cfg.VisibilityPenalty)
	}

	// 2. Look-away; an absent face is already covered by the visibility timer
	if s.lookAway.Observe(obs.FaceVisible && obs.Gaze != gaze.Center, now) {
		fire(LookingAway,
			fmt.Sprintf("User looking away from screen for %s seconds", seconds(e.cfg.LookAwayThreshold)),
			e.cfg.LookAwayPenalty)
	}

	// 3. Rapid side glances
	if n := s.history.Add(now, obs.Gaze); n >= e.cfg.RapidGlanceCount {
		fire(RapidGlance,
			fmt.Sprintf("Rapid left-right gaze detected %d times in %s seconds", n, seconds(e.cfg.GazeHistoryWindow)),
			e.cfg.RapidGlancePenalty)
		s.history.Reset()
	}

	// 4. Blinks
	if obs.FaceVisible && obs.EARMeasured() && s.blink.Observe(obs.LeftEAR, obs.RightEAR) {
		fire(Blink, "Blink detected", 0)
	}

	return alerts
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
