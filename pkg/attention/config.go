package attention

import "time"

// Config holds the thresholds and penalties of the attention engine.
type Config struct {
	// Timers
	FaceNotVisibleThreshold time.Duration `yaml:"face_not_visible_threshold" validate:"gt=0"`
	LookAwayThreshold       time.Duration `yaml:"look_away_threshold" validate:"gt=0"`

	// Rapid glance window
	GazeHistoryWindow time.Duration `yaml:"gaze_history_window" validate:"gt=0"`
	RapidGlanceCount  int           `yaml:"rapid_glance_count" validate:"gte=1"`

	// Blink detection
	BlinkEARThreshold float64 `yaml:"blink_ear_threshold" validate:"gt=0,lt=1"`
	BlinkConsecFrames int     `yaml:"blink_consec_frames" validate:"gte=1"`

	// Score
	InitialScore       int `yaml:"initial_score"`
	VisibilityPenalty  int `yaml:"visibility_penalty" validate:"gte=0"`
	LookAwayPenalty    int `yaml:"look_away_penalty" validate:"gte=0"`
	RapidGlancePenalty int `yaml:"rapid_glance_penalty" validate:"gte=0"`
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		FaceNotVisibleThreshold: 3 * time.Second,
		LookAwayThreshold:       3 * time.Second,

		GazeHistoryWindow: 10 * time.Second,
		RapidGlanceCount:  6,

		BlinkEARThreshold: 0.25,
		BlinkConsecFrames: 2,

		InitialScore:       100,
		VisibilityPenalty:  5,
		LookAwayPenalty:    5,
		RapidGlancePenalty: 3,
	}
}
