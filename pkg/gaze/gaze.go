// Package gaze classifies horizontal gaze direction from eye corners and iris
// position.
package gaze

import "github.com/teslashibe/go-attention/pkg/landmarks"

// Label is a per-eye or per-frame gaze classification.
type Label string

const (
	Left    Label = "left"
	Center  Label = "center"
	Right   Label = "right"
	Unknown Label = "unknown"
	Moving  Label = "moving" // the two eyes disagree
)

// IsSide reports whether the label counts as a side glance.
func (l Label) IsSide() bool {
	return l == Left || l == Right
}

// Thresholds are the ratio bounds for the center band. Ratios strictly below
// LeftBelow are left, strictly above RightAbove are right.
type Thresholds struct {
	LeftBelow  float64 `yaml:"left_below" validate:"gt=0,lt=1,ltfield=RightAbove"`
	RightAbove float64 `yaml:"right_above" validate:"gt=0,lt=1"`
}

// DefaultThresholds returns the 0.35 / 0.65 band.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LeftBelow:  0.35,
		RightAbove: 0.65,
	}
}

// Ratio returns the horizontal iris position between the corners.
// It reports false when the eye has zero width.
func Ratio(leftCorner, rightCorner, iris landmarks.Point) (float64, bool) {
	width := rightCorner.X - leftCorner.X
	if width == 0 {
		return 0, false
	}
	return (iris.X - leftCorner.X) / width, true
}

// Classify maps a ratio onto a label. The center band is inclusive.
func (t Thresholds) Classify(ratio float64) Label {
	switch {
	case ratio < t.LeftBelow:
		return Left
	case ratio > t.RightAbove:
		return Right
	default:
		return Center
	}
}

// Eye classifies a single eye.
func (t Thresholds) Eye(e landmarks.Eye) Label {
	ratio, ok := Ratio(e.Corners[0], e.Corners[1], e.Iris)
	if !ok {
		return Unknown
	}
	return t.Classify(ratio)
}

// Frame classifies both eyes and combines them.
func (t Thresholds) Frame(obs landmarks.EyeObservation) Label {
	return Combine(t.Eye(obs.Left), t.Eye(obs.Right))
}

// Combine merges the per-eye labels: agreement keeps the label, anything
// else is Moving.
func Combine(left, right Label) Label {
	if left == right {
		return left
	}
	return Moving
}
