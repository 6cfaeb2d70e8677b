package attention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return t0.Add(d) }

func TestRepeatTimer_OnsetDoesNotFire(t *testing.T) {
	timer := NewRepeatTimer(3 * time.Second)

	assert.False(t, timer.Observe(true, at(0)))
	assert.Equal(t, Counting, timer.State())

	since, ok := timer.Since()
	assert.True(t, ok)
	assert.Equal(t, at(0), since)
}

func TestRepeatTimer_FiresAfterThresholdAndRearms(t *testing.T) {
	timer := NewRepeatTimer(3 * time.Second)
	timer.Observe(true, at(0))

	assert.False(t, timer.Observe(true, at(3*time.Second)), "threshold is exclusive")
	assert.True(t, timer.Observe(true, at(3100*time.Millisecond)))

	since, _ := timer.Since()
	assert.Equal(t, at(3100*time.Millisecond), since)

	assert.False(t, timer.Observe(true, at(5*time.Second)))
	assert.True(t, timer.Observe(true, at(6200*time.Millisecond)))
}

func TestRepeatTimer_ClearsWhenInactive(t *testing.T) {
	timer := NewRepeatTimer(3 * time.Second)
	timer.Observe(true, at(0))
	timer.Observe(true, at(2*time.Second))

	assert.False(t, timer.Observe(false, at(2500*time.Millisecond)))
	assert.Equal(t, Idle, timer.State())
	_, ok := timer.Since()
	assert.False(t, ok)

	// restarts from scratch
	assert.False(t, timer.Observe(true, at(4*time.Second)))
	assert.False(t, timer.Observe(true, at(6500*time.Millisecond)))
	assert.True(t, timer.Observe(true, at(7100*time.Millisecond)))
}

func TestTimerState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "counting", Counting.String())
}
