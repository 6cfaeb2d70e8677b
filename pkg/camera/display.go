package camera

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/teslashibe/go-attention/pkg/monitor"
)

// Keys that stop the session from the window.
const (
	keyQuit   = 'q'
	keyEscape = 27
)

// Display shows annotated frames in a window.
type Display struct {
	window *gocv.Window
}

// NewDisplay opens a window.
func NewDisplay(name string) *Display {
	return &Display{window: gocv.NewWindow(name)}
}

// Show draws the overlay onto the frame, displays it and polls the keyboard
// once. It reports whether the user asked to stop.
func (d *Display) Show(f *Frame, overlay []monitor.OverlayLine) bool {
	for i, line := range overlay {
		gocv.PutText(&f.Mat, line.Text, image.Pt(10, 30+30*i),
			gocv.FontHersheySimplex, 0.7, line.Color, 2)
	}
	d.window.IMShow(f.Mat)

	key := d.window.WaitKey(1) & 0xFF
	return key == keyQuit || key == keyEscape
}

// Close destroys the window.
func (d *Display) Close() error {
	return d.window.Close()
}
