package attention

// BlinkState is the state of a BlinkDetector.
type BlinkState int

const (
	EyesOpen BlinkState = iota
	EyesClosing
)

func (s BlinkState) String() string {
	if s == EyesClosing {
		return "closing"
	}
	return "open"
}

// BlinkDetector counts blinks on the eyes-open edge that follows a run of
// at least minFrames low-EAR frames.
type BlinkDetector struct {
	threshold float64
	minFrames int
	run       int
	total     int
}

// NewBlinkDetector creates a detector in the open state.
func NewBlinkDetector(threshold float64, minFrames int) BlinkDetector {
	return BlinkDetector{threshold: threshold, minFrames: minFrames}
}

// Observe feeds one frame's EAR values and reports whether a blink completed
// on this frame.
func (b *BlinkDetector) Observe(leftEAR, rightEAR float64) bool {
	if leftEAR < b.threshold || rightEAR < b.threshold {
		b.run++
		return false
	}

	blinked := b.run >= b.minFrames
	if blinked {
		b.total++
	}
	b.run = 0
	return blinked
}

// State returns open or closing.
func (b *BlinkDetector) State() BlinkState {
	if b.run > 0 {
		return EyesClosing
	}
	return EyesOpen
}

// Run is the current consecutive low-EAR frame count.
func (b *BlinkDetector) Run() int {
	return b.run
}

// Total is the number of blinks counted so far.
func (b *BlinkDetector) Total() int {
	return b.total
}
