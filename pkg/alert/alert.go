// Package alert rate-limits attention alerts and writes them to the console
// and an append-only log file.
package alert

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/teslashibe/go-attention/internal/log"
)

// Config holds the alert logger settings.
type Config struct {
	Cooldown time.Duration `yaml:"cooldown" validate:"gt=0"`
	LogFile  string        `yaml:"log_file" validate:"required"`
}

// DefaultConfig returns a 2s cooldown writing to alert_log.txt.
func DefaultConfig() Config {
	return Config{
		Cooldown: 2 * time.Second,
		LogFile:  "alert_log.txt",
	}
}

// Clock returns the current time.
type Clock func() time.Time

// Option configures a Logger.
type Option func(*Logger)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(l *Logger) {
		l.clock = c
	}
}

// Logger emits at most one alert per cooldown across all reasons. Alerts
// arriving inside the cooldown are dropped, never queued.
type Logger struct {
	clock   Clock
	start   time.Time
	limiter *rate.Limiter
	sinks   []Sink

	emitted    int
	suppressed int
}

// NewLogger creates a logger. Elapsed timestamps count from this call.
func NewLogger(cfg Config, sinks []Sink, opts ...Option) *Logger {
	l := &Logger{
		clock: time.Now,
		sinks: sinks,
	}
	for _, opt := range opts {
		opt(l)
	}

	l.start = l.clock()
	// one token, refilled after a full cooldown: an alert passes only if the
	// previous emitted one is at least Cooldown old
	l.limiter = rate.NewLimiter(rate.Every(cfg.Cooldown), 1)
	return l
}

// Log emits reason now unless the cooldown is still running.
func (l *Logger) Log(reason string) bool {
	return l.LogAt(l.clock(), reason)
}

// LogAt is Log with an explicit time. It reports whether the alert was emitted.
// Sink failures are logged and do not count as suppression.
func (l *Logger) LogAt(now time.Time, reason string) bool {
	if !l.limiter.AllowN(now, 1) {
		l.suppressed++
		log.Debug("alert suppressed", "reason", reason)
		return false
	}

	line := Format(now.Sub(l.start), reason)
	for _, s := range l.sinks {
		if err := s.Write(line); err != nil {
			log.Warn("alert sink write failed", "error", err)
		}
	}
	l.emitted++
	return true
}

// Emitted is the number of alerts that passed the cooldown.
func (l *Logger) Emitted() int { return l.emitted }

// Suppressed is the number of alerts dropped by the cooldown.
func (l *Logger) Suppressed() int { return l.suppressed }

// Format renders "[ALERT] HH:MM:SS - reason".
func Format(elapsed time.Duration, reason string) string {
	return fmt.Sprintf("[ALERT] %s - %s", FormatElapsed(elapsed), reason)
}

// FormatElapsed renders a duration as a wall-clock style HH:MM:SS. Hours wrap
// at 24 and negative durations clamp to zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := (total / 3600) % 24
	m := (total / 60) % 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
