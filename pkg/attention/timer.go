package attention

import "time"

// TimerState is the state of a RepeatTimer.
type TimerState int

const (
	Idle TimerState = iota
	Counting
)

func (s TimerState) String() string {
	if s == Counting {
		return "counting"
	}
	return "idle"
}

// RepeatTimer tracks how long a condition has held and fires once per full
// threshold interval while it keeps holding.
//
//	idle     --active-->            counting (since = now)
//	counting --elapsed > threshold-> counting (fire, since = now)
//	counting --inactive-->          idle
type RepeatTimer struct {
	threshold time.Duration
	state     TimerState
	since     time.Time
}

// NewRepeatTimer creates an idle timer.
func NewRepeatTimer(threshold time.Duration) RepeatTimer {
	return RepeatTimer{threshold: threshold}
}

// Observe advances the timer and reports whether it fired. The onset frame
// never fires.
func (t *RepeatTimer) Observe(active bool, now time.Time) bool {
	if !active {
		t.state = Idle
		t.since = time.Time{}
		return false
	}

	if t.state == Idle {
		t.state = Counting
		t.since = now
		return false
	}

	if now.Sub(t.since) > t.threshold {
		t.since = now // re-arm
		return true
	}
	return false
}

// State returns the current timer state.
func (t *RepeatTimer) State() TimerState {
	return t.state
}

// Since returns the start of the current interval while counting.
func (t *RepeatTimer) Since() (time.Time, bool) {
	return t.since, t.state == Counting
}
